package service

import (
	"errors"

	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ApplicationService governs the applicant-vacancy relationship:
// apply (with or without a screening test), employer decision, withdrawal.
type ApplicationService interface {
	Apply(applicantID uint, req dto.ApplyRequest) (*dto.ApplyResultDTO, error)
	Decide(req dto.DecisionRequest) (*dto.ApplicationResponse, error)
	Withdraw(vacancyID, applicantID uint) error
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	vacancyRepo     repository.VacancyRepository
	testRepo        repository.TestRepository
	resumeRepo      repository.ResumeRepository
	scoring         ScoringService
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	vacancyRepo repository.VacancyRepository,
	testRepo repository.TestRepository,
	resumeRepo repository.ResumeRepository,
	scoring ScoringService,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		testRepo:        testRepo,
		resumeRepo:      resumeRepo,
		scoring:         scoring,
	}
}

// Apply creates the application. When the vacancy carries a screening test
// the submitted answers are scored first and the test result is stored with
// the application in one transaction; a score below the threshold still
// creates the application, in the failed state.
func (s *applicationService) Apply(applicantID uint, req dto.ApplyRequest) (*dto.ApplyResultDTO, error) {
	vacancy, err := s.vacancyRepo.FindByIDWithTest(req.VacancyID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancy not found", "")
	}

	if _, err := s.resumeRepo.FindByApplicantID(applicantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Conflict("a resume is required before applying")
		}
		return nil, apperr.FromStore(err, "", "")
	}

	if vacancy.Test == nil {
		application := model.VacancyApplication{
			VacancyID:   vacancy.ID,
			ApplicantID: applicantID,
			Status:      model.ApplicationStatusPending,
		}
		if err := s.applicationRepo.Create(&application); err != nil {
			return nil, apperr.FromStore(err, "vacancy not found", "application already exists for this vacancy")
		}
		log.Info().Uint("vacancyID", vacancy.ID).Uint("applicantID", applicantID).Msg("Application created without screening test")
		return &dto.ApplyResultDTO{
			VacancyID:   vacancy.ID,
			ApplicantID: applicantID,
			Status:      application.Status,
		}, nil
	}

	questions, err := s.testRepo.FindQuestionsByVacancyID(vacancy.ID)
	if err != nil {
		return nil, apperr.FromStore(err, "screening test not found", "")
	}
	if len(questions) == 0 {
		return nil, apperr.NotFound("no questions found for this vacancy's screening test")
	}

	answers := make(map[uint]int, len(req.Answers))
	for _, a := range req.Answers {
		answers[a.QuestionID] = a.AnswerNumber
	}

	score := s.scoring.Score(questions, answers)
	status := model.ApplicationStatusFailed
	if s.scoring.Passed(score) {
		status = model.ApplicationStatusPending
	}

	result := model.ApplicantTestResult{
		ApplicantID: applicantID,
		VacancyID:   vacancy.ID,
		Score:       score,
	}
	application := model.VacancyApplication{
		VacancyID:   vacancy.ID,
		ApplicantID: applicantID,
		Status:      status,
	}
	if err := s.applicationRepo.CreateWithResult(&application, &result); err != nil {
		return nil, apperr.FromStore(err, "vacancy not found", "application already exists for this vacancy")
	}

	log.Info().
		Uint("vacancyID", vacancy.ID).
		Uint("applicantID", applicantID).
		Float64("score", score).
		Str("status", status).
		Msg("Screening test scored, application created")

	return &dto.ApplyResultDTO{
		VacancyID:   vacancy.ID,
		ApplicantID: applicantID,
		Status:      status,
		Score:       &score,
	}, nil
}

// Decide moves a pending application to accepted or rejected. Applications
// already in a terminal state are not overwritten.
func (s *applicationService) Decide(req dto.DecisionRequest) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByPair(req.VacancyID, req.ApplicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "application not found", "")
	}
	if application.Terminal() {
		return nil, apperr.Conflict("application has already been decided")
	}

	status := model.ApplicationStatusRejected
	if req.Accept {
		status = model.ApplicationStatusAccepted
	}
	if err := s.applicationRepo.UpdateStatus(application, status); err != nil {
		return nil, apperr.FromStore(err, "application not found", "")
	}
	application.Status = status

	log.Info().
		Uint("vacancyID", req.VacancyID).
		Uint("applicantID", req.ApplicantID).
		Str("status", status).
		Msg("Employer decision recorded")

	return &dto.ApplicationResponse{
		ID:          application.ID,
		VacancyID:   application.VacancyID,
		ApplicantID: application.ApplicantID,
		Status:      application.Status,
	}, nil
}

// Withdraw removes the application together with any stored test result.
func (s *applicationService) Withdraw(vacancyID, applicantID uint) error {
	if err := s.applicationRepo.DeleteWithResult(vacancyID, applicantID); err != nil {
		return apperr.FromStore(err, "application not found", "")
	}
	log.Info().Uint("vacancyID", vacancyID).Uint("applicantID", applicantID).Msg("Application withdrawn")
	return nil
}
