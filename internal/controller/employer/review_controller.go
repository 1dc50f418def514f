package employer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

// ReviewController serves the employer's side of the application lifecycle:
// the review feed, the accept/reject decision and the analytics view.
type ReviewController struct {
	vacancyService     service.VacancyService
	applicationService service.ApplicationService
	analyticsService   service.AnalyticsService
}

func NewReviewController(
	vacancyService service.VacancyService,
	applicationService service.ApplicationService,
	analyticsService service.AnalyticsService,
) *ReviewController {
	return &ReviewController{
		vacancyService:     vacancyService,
		applicationService: applicationService,
		analyticsService:   analyticsService,
	}
}

// Review godoc
// @Summary List the employer's vacancies with screening results for review
// @Tags Employer - Applications
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Router /employers/{id}/review [get]
func (c *ReviewController) Review(ctx *gin.Context) {
	employerID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	vacancies, err := c.vacancyService.ListForReview(employerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: vacancies})
}

// Decide godoc
// @Summary Accept or reject a pending application
// @Tags Employer - Applications
// @Accept json
// @Produce json
// @Param decision body dto.DecisionRequest true "Vacancy, applicant and the accept flag"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Application not found"
// @Failure 409 {object} dto.Response "Application already decided"
// @Router /employers/applications [put]
func (c *ReviewController) Decide(ctx *gin.Context) {
	var req dto.DecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	application, err := c.applicationService.Decide(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "decision saved", Data: application})
}

// Analytics godoc
// @Summary Summary statistics over the employer's jobs and vacancies
// @Tags Employer - Applications
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Employer not found"
// @Router /employers/{id}/analytics [get]
func (c *ReviewController) Analytics(ctx *gin.Context) {
	employerID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	stats, err := c.analyticsService.EmployerStatistics(employerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: stats})
}
