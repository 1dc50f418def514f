package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

type AccountController struct {
	accountService service.AccountService
}

func NewAccountController(accountService service.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// GetEmployer godoc
// @Summary Get an employer profile
// @Tags Accounts
// @Produce json
// @Param id path int true "Employer ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Failure 404 {object} dto.Response "Employer not found"
// @Router /users/employers/{id} [get]
func (c *AccountController) GetEmployer(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	employer, err := c.accountService.GetEmployer(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: employer})
}

// GetApplicant godoc
// @Summary Get an applicant profile
// @Tags Accounts
// @Produce json
// @Param id path int true "Applicant ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid ID format"
// @Failure 404 {object} dto.Response "Applicant not found"
// @Router /users/applicants/{id} [get]
func (c *AccountController) GetApplicant(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	applicant, err := c.accountService.GetApplicant(id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: applicant})
}

// ListTags godoc
// @Summary List all vacancy tags
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.Response
// @Router /tags [get]
func (c *AccountController) ListTags(ctx *gin.Context) {
	tags, err := c.accountService.ListTags()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: tags})
}
