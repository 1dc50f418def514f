package employer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

type JobController struct {
	jobService service.JobService
}

func NewJobController(jobService service.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// ListJobs godoc
// @Summary List the employer's jobs
// @Tags Employer - Jobs
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Router /employers/{id}/works [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	employerID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	jobs, err := c.jobService.ListByEmployer(employerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	if len(jobs) == 0 {
		ctx.JSON(http.StatusOK, dto.Response{Message: "no jobs yet, create the first one"})
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: jobs})
}

// CreateJob godoc
// @Summary Create a job under the employer
// @Tags Employer - Jobs
// @Accept json
// @Produce json
// @Param id path int true "Employer ID"
// @Param job body dto.JobCreateRequest true "Job data"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid payload"
// @Router /employers/{id}/works [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	employerID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.JobCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	job, err := c.jobService.Create(employerID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: "job created", Data: job})
}

// UpdateJob godoc
// @Summary Update a job
// @Tags Employer - Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param job body dto.JobUpdateRequest true "Job data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Job not found"
// @Router /works/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	jobID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.JobUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	job, err := c.jobService.Update(jobID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "job updated", Data: job})
}

// DeleteJob godoc
// @Summary Delete a job and everything under it
// @Tags Employer - Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Job not found"
// @Router /works/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	jobID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.jobService.Delete(jobID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "job deleted"})
}
