package employer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

type VacancyController struct {
	vacancyService service.VacancyService
}

func NewVacancyController(vacancyService service.VacancyService) *VacancyController {
	return &VacancyController{vacancyService: vacancyService}
}

// ListVacancies godoc
// @Summary List vacancies under a job
// @Tags Employer - Vacancies
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Router /works/{id}/vacancies [get]
func (c *VacancyController) ListVacancies(ctx *gin.Context) {
	jobID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	vacancies, err := c.vacancyService.ListByJob(jobID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if len(vacancies) == 0 {
		ctx.JSON(http.StatusOK, dto.Response{Message: "no vacancies yet, create the first one"})
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: vacancies})
}

// CreateVacancy godoc
// @Summary Create a vacancy under a job
// @Tags Employer - Vacancies
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param vacancy body dto.VacancyCreateRequest true "Vacancy data with tag ids"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid payload"
// @Router /works/{id}/vacancies [post]
func (c *VacancyController) CreateVacancy(ctx *gin.Context) {
	jobID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.VacancyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	vacancy, err := c.vacancyService.Create(jobID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: "vacancy created", Data: vacancy})
}

// UpdateVacancy godoc
// @Summary Update a vacancy and replace its tag set
// @Tags Employer - Vacancies
// @Accept json
// @Produce json
// @Param id path int true "Vacancy ID"
// @Param vacancy body dto.VacancyUpdateRequest true "Vacancy data with tag ids"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Vacancy not found"
// @Router /vacancies/{id} [put]
func (c *VacancyController) UpdateVacancy(ctx *gin.Context) {
	vacancyID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.VacancyUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	vacancy, err := c.vacancyService.Update(vacancyID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "vacancy updated", Data: vacancy})
}

// DeleteVacancy godoc
// @Summary Delete a vacancy with its test, applications and results
// @Tags Employer - Vacancies
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Vacancy not found"
// @Router /vacancies/{id} [delete]
func (c *VacancyController) DeleteVacancy(ctx *gin.Context) {
	vacancyID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.vacancyService.Delete(vacancyID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "vacancy deleted"})
}
