package dto

type QuestionCreateRequest struct {
	QuestionText  string `json:"question_text" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectAnswer int    `json:"correct_answer" binding:"required,min=1,max=4"`
}

type QuestionUpdateRequest struct {
	QuestionText  string `json:"question_text" binding:"required"`
	Option1       string `json:"option1" binding:"required"`
	Option2       string `json:"option2" binding:"required"`
	Option3       string `json:"option3" binding:"required"`
	Option4       string `json:"option4" binding:"required"`
	CorrectAnswer int    `json:"correct_answer" binding:"required,min=1,max=4"`
}

type QuestionResponse struct {
	ID            uint   `json:"id"`
	TestID        uint   `json:"test_id"`
	QuestionText  string `json:"question_text"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectAnswer int    `json:"correct_answer"`
}

type TestResponse struct {
	ID        uint               `json:"id"`
	VacancyID uint               `json:"vacancy_id"`
	Questions []QuestionResponse `json:"questions,omitempty"`
}
