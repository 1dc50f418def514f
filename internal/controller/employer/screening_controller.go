package employer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk/internal/controller"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/service"
)

type ScreeningController struct {
	screeningService service.ScreeningService
}

func NewScreeningController(screeningService service.ScreeningService) *ScreeningController {
	return &ScreeningController{screeningService: screeningService}
}

// GetTest godoc
// @Summary Get a vacancy's screening test with its questions
// @Tags Employer - Screening
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Test not found"
// @Router /vacancies/{id}/test [get]
func (c *ScreeningController) GetTest(ctx *gin.Context) {
	vacancyID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	test, err := c.screeningService.GetTest(vacancyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Data: test})
}

// CreateTest godoc
// @Summary Attach a screening test to a vacancy
// @Tags Employer - Screening
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 201 {object} dto.Response
// @Failure 409 {object} dto.Response "Vacancy already has a test"
// @Router /vacancies/{id}/test [post]
func (c *ScreeningController) CreateTest(ctx *gin.Context) {
	vacancyID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	test, err := c.screeningService.CreateTest(vacancyID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: "screening test created", Data: test})
}

// DeleteTest godoc
// @Summary Remove a vacancy's screening test
// @Tags Employer - Screening
// @Produce json
// @Param id path int true "Vacancy ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Test not found"
// @Router /vacancies/{id}/test [delete]
func (c *ScreeningController) DeleteTest(ctx *gin.Context) {
	vacancyID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.screeningService.DeleteTest(vacancyID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "screening test deleted"})
}

// AddQuestion godoc
// @Summary Add a question to a screening test
// @Tags Employer - Screening
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param question body dto.QuestionCreateRequest true "Question with four options and the correct option number"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid payload"
// @Router /tests/{id}/questions [post]
func (c *ScreeningController) AddQuestion(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	question, err := c.screeningService.AddQuestion(testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Response{Message: "question added", Data: question})
}

// UpdateQuestion godoc
// @Summary Update a screening question
// @Tags Employer - Screening
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateRequest true "Question data"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Question not found"
// @Router /questions/{id} [put]
func (c *ScreeningController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Response{Message: "invalid request body"})
		return
	}
	question, err := c.screeningService.UpdateQuestion(questionID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "question updated", Data: question})
}

// DeleteQuestion godoc
// @Summary Delete a screening question
// @Tags Employer - Screening
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Question not found"
// @Router /questions/{id} [delete]
func (c *ScreeningController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.screeningService.DeleteQuestion(questionID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Response{Message: "question deleted"})
}
