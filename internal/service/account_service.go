package service

import (
	"github.com/jinzhu/copier"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/repository"
)

// AccountService serves the public profile reads and the tag dictionary.
type AccountService interface {
	GetEmployer(id uint) (*dto.EmployerResponse, error)
	GetApplicant(id uint) (*dto.ApplicantResponse, error)
	ListTags() ([]dto.TagResponse, error)
}

type accountService struct {
	employerRepo  repository.EmployerRepository
	applicantRepo repository.ApplicantRepository
	tagRepo       repository.TagRepository
}

func NewAccountService(
	employerRepo repository.EmployerRepository,
	applicantRepo repository.ApplicantRepository,
	tagRepo repository.TagRepository,
) AccountService {
	return &accountService{
		employerRepo:  employerRepo,
		applicantRepo: applicantRepo,
		tagRepo:       tagRepo,
	}
}

func (s *accountService) GetEmployer(id uint) (*dto.EmployerResponse, error) {
	employer, err := s.employerRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err, "employer not found", "")
	}
	var resp dto.EmployerResponse
	if err := copier.Copy(&resp, employer); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

func (s *accountService) GetApplicant(id uint) (*dto.ApplicantResponse, error) {
	applicant, err := s.applicantRepo.FindByID(id)
	if err != nil {
		return nil, apperr.FromStore(err, "applicant not found", "")
	}
	var resp dto.ApplicantResponse
	if err := copier.Copy(&resp, applicant); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

func (s *accountService) ListTags() ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, apperr.FromStore(err, "tags not found", "")
	}

	dtos := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		dtos = append(dtos, dto.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return dtos, nil
}
