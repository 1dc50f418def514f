package service

import (
	"github.com/jinzhu/copier"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
)

// ScreeningService manages the optional screening test of a vacancy and its
// questions.
type ScreeningService interface {
	GetTest(vacancyID uint) (*dto.TestResponse, error)
	CreateTest(vacancyID uint) (*dto.TestResponse, error)
	DeleteTest(vacancyID uint) error

	AddQuestion(testID uint, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(questionID uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(questionID uint) error
}

type screeningService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewScreeningService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository) ScreeningService {
	return &screeningService{testRepo: testRepo, questionRepo: questionRepo}
}

func (s *screeningService) GetTest(vacancyID uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByVacancyID(vacancyID)
	if err != nil {
		return nil, apperr.FromStore(err, "screening test not found", "")
	}

	var resp dto.TestResponse
	if err := copier.Copy(&resp, test); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

// CreateTest attaches an empty test to the vacancy. The unique index on
// vacancy_id keeps it one test per vacancy.
func (s *screeningService) CreateTest(vacancyID uint) (*dto.TestResponse, error) {
	test := model.Test{VacancyID: vacancyID}
	if err := s.testRepo.Create(&test); err != nil {
		return nil, apperr.FromStore(err, "vacancy not found", "this vacancy already has a screening test")
	}
	return &dto.TestResponse{ID: test.ID, VacancyID: test.VacancyID}, nil
}

func (s *screeningService) DeleteTest(vacancyID uint) error {
	if err := s.testRepo.DeleteByVacancyID(vacancyID); err != nil {
		return apperr.FromStore(err, "screening test not found", "")
	}
	return nil
}

func (s *screeningService) AddQuestion(testID uint, req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		TestID:        testID,
		QuestionText:  req.QuestionText,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, apperr.FromStore(err, "screening test not found", "")
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

func (s *screeningService) UpdateQuestion(questionID uint, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, apperr.FromStore(err, "question not found", "")
	}

	question.QuestionText = req.QuestionText
	question.Option1 = req.Option1
	question.Option2 = req.Option2
	question.Option3 = req.Option3
	question.Option4 = req.Option4
	question.CorrectAnswer = req.CorrectAnswer
	if err := s.questionRepo.Update(question); err != nil {
		return nil, apperr.FromStore(err, "question not found", "")
	}

	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

func (s *screeningService) DeleteQuestion(questionID uint) error {
	if err := s.questionRepo.Delete(questionID); err != nil {
		return apperr.FromStore(err, "question not found", "")
	}
	return nil
}
