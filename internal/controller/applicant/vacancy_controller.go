package applicant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// VacancyController serves the applicant's side: browsing vacancies,
// applying (optionally through a screening test), withdrawing and analytics.
type VacancyController struct {
	vacancyService     service.VacancyService
	applicationService service.ApplicationService
	analyticsService   service.AnalyticsService
}

func NewVacancyController(
	vacancyService service.VacancyService,
	applicationService service.ApplicationService,
	analyticsService service.AnalyticsService,
) *VacancyController {
	return &VacancyController{
		vacancyService:     vacancyService,
		applicationService: applicationService,
		analyticsService:   analyticsService,
	}
}

// ListVacancies godoc
// @Summary List vacancies for the applicant
// @Description Without the applied flag: open vacancies the applicant has not applied to. With applied=true: the applicant's applied vacancies carrying their own application.
// @Tags Applicant - Vacancies
// @Produce json
// @Param id path int true "Applicant ID"
// @Param applied query bool false "List applied vacancies instead of the open feed"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Router /applicants/{id}/vacancies [get]
func (c *VacancyController) ListVacancies(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	var (
		vacancies []dto.VacancyResponse
		err       error
	)
	if ctx.Query("applied") == "true" {
		vacancies, err = c.vacancyService.ListAppliedBy(applicantID)
	} else {
		vacancies, err = c.vacancyService.ListOpenFor(applicantID)
	}
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: vacancies})
}

// Apply godoc
// @Summary Apply to a vacancy
// @Description Creates the application. When the vacancy has a screening test the submitted answers are scored first; the result and the application are stored together.
// @Tags Applicant - Applications
// @Accept json
// @Produce json
// @Param id path int true "Applicant ID"
// @Param application body dto.ApplyRequest true "Vacancy id plus answers when the vacancy has a test"
// @Success 201 {object} dto.Response
// @Failure 404 {object} dto.Response "Vacancy or its questions not found"
// @Failure 409 {object} dto.Response "Already applied or resume missing"
// @Router /applicants/{id}/applications [post]
func (c *VacancyController) Apply(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}

	result, err := c.applicationService.Apply(applicantID, req)
	if err != nil {
		log.Warn().Err(err).Uint("applicantID", applicantID).Uint("vacancyID", req.VacancyID).Msg("Apply failed")
		controller.RespondError(ctx, err)
		return
	}

	message := "application submitted"
	if result.Score != nil {
		message = "screening test completed"
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: message, Data: result})
}

// Withdraw godoc
// @Summary Withdraw an application
// @Description Deletes the application and any stored screening result for the pair.
// @Tags Applicant - Applications
// @Produce json
// @Param id path int true "Applicant ID"
// @Param vacancy_id path int true "Vacancy ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Application not found"
// @Router /applicants/{id}/applications/{vacancy_id} [delete]
func (c *VacancyController) Withdraw(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	vacancyID, ok := controller.ParseIDParam(ctx, "vacancy_id")
	if !ok {
		return
	}
	if err := c.applicationService.Withdraw(vacancyID, applicantID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "application withdrawn"})
}

// Analytics godoc
// @Summary Summary statistics over the applicant's applications and tests
// @Tags Applicant - Applications
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Applicant not found"
// @Router /applicants/{id}/analytics [get]
func (c *VacancyController) Analytics(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	stats, err := c.analyticsService.ApplicantStatistics(applicantID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: stats})
}
