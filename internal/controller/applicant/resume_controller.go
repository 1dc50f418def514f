package applicant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

type ResumeController struct {
	resumeService service.ResumeService
}

func NewResumeController(resumeService service.ResumeService) *ResumeController {
	return &ResumeController{resumeService: resumeService}
}

// GetResume godoc
// @Summary Get the applicant's resume
// @Tags Applicant - Resume
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Resume not found"
// @Router /applicants/{id}/resume [get]
func (c *ResumeController) GetResume(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	resume, err := c.resumeService.Get(applicantID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: resume})
}

// CreateResume godoc
// @Summary Create the applicant's resume
// @Tags Applicant - Resume
// @Accept json
// @Produce json
// @Param id path int true "Applicant ID"
// @Param resume body dto.ResumeRequest true "Resume content"
// @Success 201 {object} dto.Response
// @Failure 409 {object} dto.Response "Resume already exists"
// @Router /applicants/{id}/resume [post]
func (c *ResumeController) CreateResume(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	resume, err := c.resumeService.Create(applicantID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: "resume created", Data: resume})
}

// UpdateResume godoc
// @Summary Update the applicant's resume
// @Tags Applicant - Resume
// @Accept json
// @Produce json
// @Param id path int true "Applicant ID"
// @Param resume body dto.ResumeRequest true "Resume content"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Resume not found"
// @Router /applicants/{id}/resume [put]
func (c *ResumeController) UpdateResume(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	resume, err := c.resumeService.Update(applicantID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "resume updated", Data: resume})
}

// DeleteResume godoc
// @Summary Delete the applicant's resume
// @Tags Applicant - Resume
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Resume not found"
// @Router /applicants/{id}/resume [delete]
func (c *ResumeController) DeleteResume(ctx *gin.Context) {
	applicantID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.resumeService.Delete(applicantID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "resume deleted"})
}
