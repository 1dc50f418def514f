package dto

// SubmittedAnswerDTO is one answer of a screening-test submission.
type SubmittedAnswerDTO struct {
	QuestionID   uint `json:"question_id" binding:"required"`
	AnswerNumber int  `json:"answer_number" binding:"required,min=1,max=4"`
}

// ApplyRequest creates an application. Answers must be present exactly when
// the vacancy has a screening test.
type ApplyRequest struct {
	VacancyID uint                 `json:"vacancy_id" binding:"required"`
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"omitempty,dive"`
}

// ApplyResultDTO reports the outcome of an apply call. Score is set only
// when a screening test was taken.
type ApplyResultDTO struct {
	VacancyID   uint     `json:"vacancy_id"`
	ApplicantID uint     `json:"applicant_id"`
	Status      string   `json:"status"`
	Score       *float64 `json:"score,omitempty"`
}

// DecisionRequest is the employer's accept/reject verdict on a pending
// application.
type DecisionRequest struct {
	VacancyID   uint `json:"vacancy_id" binding:"required"`
	ApplicantID uint `json:"applicant_id" binding:"required"`
	Accept      bool `json:"accept"`
}

type ApplicationResponse struct {
	ID          uint               `json:"id"`
	VacancyID   uint               `json:"vacancy_id"`
	ApplicantID uint               `json:"applicant_id"`
	Status      string             `json:"status"`
	Applicant   *ApplicantResponse `json:"applicant,omitempty"`
}

type TestResultResponse struct {
	ID          uint    `json:"id"`
	ApplicantID uint    `json:"applicant_id"`
	VacancyID   uint    `json:"vacancy_id"`
	Score       float64 `json:"score"`
}
