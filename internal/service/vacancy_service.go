package service

import (
	"github.com/jinzhu/copier"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type VacancyService interface {
	ListByJob(jobID uint) ([]dto.VacancyResponse, error)
	Create(jobID uint, req dto.VacancyCreateRequest) (*dto.VacancyResponse, error)
	Update(vacancyID uint, req dto.VacancyUpdateRequest) (*dto.VacancyResponse, error)
	Delete(vacancyID uint) error

	ListOpenFor(applicantID uint) ([]dto.VacancyResponse, error)
	ListAppliedBy(applicantID uint) ([]dto.VacancyResponse, error)
	ListForReview(employerID uint) ([]dto.VacancyResponse, error)
}

type vacancyService struct {
	vacancyRepo repository.VacancyRepository
	tagRepo     repository.TagRepository
}

func NewVacancyService(vacancyRepo repository.VacancyRepository, tagRepo repository.TagRepository) VacancyService {
	return &vacancyService{vacancyRepo: vacancyRepo, tagRepo: tagRepo}
}

func (s *vacancyService) ListByJob(jobID uint) ([]dto.VacancyResponse, error) {
	vacancies, err := s.vacancyRepo.FindAllByJob(jobID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancies not found", "")
	}
	return toVacancyDTOs(vacancies), nil
}

func (s *vacancyService) Create(jobID uint, req dto.VacancyCreateRequest) (*dto.VacancyResponse, error) {
	tags, err := s.tagRepo.FindByIDs(req.TagIDs)
	if err != nil {
		return nil, apperr.FromStore(err, "tags not found", "")
	}

	vacancy := model.Vacancy{
		JobID:       jobID,
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Status:      model.VacancyStatusOpen,
		Tags:        tags,
	}
	if err := s.vacancyRepo.Create(&vacancy); err != nil {
		return nil, apperr.FromStore(err, "job not found", "")
	}

	resp := toVacancyDTO(vacancy)
	return &resp, nil
}

func (s *vacancyService) Update(vacancyID uint, req dto.VacancyUpdateRequest) (*dto.VacancyResponse, error) {
	vacancy, err := s.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancy not found", "")
	}

	tags, err := s.tagRepo.FindByIDs(req.TagIDs)
	if err != nil {
		return nil, apperr.FromStore(err, "tags not found", "")
	}

	vacancy.Title = req.Title
	vacancy.Description = req.Description
	vacancy.Salary = req.Salary
	if err := s.vacancyRepo.Update(vacancy); err != nil {
		return nil, apperr.FromStore(err, "vacancy not found", "")
	}
	if err := s.vacancyRepo.ReplaceTags(vacancy, tags); err != nil {
		log.Error().Err(err).Uint("vacancyID", vacancyID).Msg("Failed to replace vacancy tags")
		return nil, apperr.FromStore(err, "vacancy not found", "")
	}
	vacancy.Tags = tags

	resp := toVacancyDTO(*vacancy)
	return &resp, nil
}

func (s *vacancyService) Delete(vacancyID uint) error {
	if err := s.vacancyRepo.Delete(vacancyID); err != nil {
		return apperr.FromStore(err, "vacancy not found", "")
	}
	return nil
}

func (s *vacancyService) ListOpenFor(applicantID uint) ([]dto.VacancyResponse, error) {
	vacancies, err := s.vacancyRepo.FindOpenNotAppliedBy(applicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancies not found", "")
	}
	return toVacancyDTOs(vacancies), nil
}

func (s *vacancyService) ListAppliedBy(applicantID uint) ([]dto.VacancyResponse, error) {
	vacancies, err := s.vacancyRepo.FindAppliedBy(applicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancies not found", "")
	}
	return toVacancyDTOs(vacancies), nil
}

func (s *vacancyService) ListForReview(employerID uint) ([]dto.VacancyResponse, error) {
	vacancies, err := s.vacancyRepo.FindForReview(employerID)
	if err != nil {
		return nil, apperr.FromStore(err, "vacancies not found", "")
	}
	return toVacancyDTOs(vacancies), nil
}

func toVacancyDTOs(vacancies []model.Vacancy) []dto.VacancyResponse {
	dtos := make([]dto.VacancyResponse, 0, len(vacancies))
	for _, vacancy := range vacancies {
		dtos = append(dtos, toVacancyDTO(vacancy))
	}
	return dtos
}

func toVacancyDTO(vacancy model.Vacancy) dto.VacancyResponse {
	var resp dto.VacancyResponse
	if err := copier.Copy(&resp, &vacancy); err != nil {
		log.Error().Err(err).Uint("vacancyID", vacancy.ID).Msg("Failed to copy vacancy to DTO")
	}
	return resp
}
