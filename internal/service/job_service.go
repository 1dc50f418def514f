package service

import (
	"github.com/jinzhu/copier"
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type JobService interface {
	ListByEmployer(employerID uint) ([]dto.JobResponse, error)
	Create(employerID uint, req dto.JobCreateRequest) (*dto.JobResponse, error)
	Update(jobID uint, req dto.JobUpdateRequest) (*dto.JobResponse, error)
	Delete(jobID uint) error
}

type jobService struct {
	jobRepo repository.JobRepository
}

func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListByEmployer(employerID uint) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindAllByEmployer(employerID)
	if err != nil {
		return nil, apperr.FromStore(err, "jobs not found", "")
	}

	dtos := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		var resp dto.JobResponse
		if err := copier.Copy(&resp, &job); err != nil {
			log.Error().Err(err).Uint("jobID", job.ID).Msg("Failed to copy job to DTO")
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *jobService) Create(employerID uint, req dto.JobCreateRequest) (*dto.JobResponse, error) {
	job := model.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.jobRepo.Create(&job); err != nil {
		return nil, apperr.FromStore(err, "employer not found", "")
	}

	var resp dto.JobResponse
	if err := copier.Copy(&resp, &job); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

func (s *jobService) Update(jobID uint, req dto.JobUpdateRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperr.FromStore(err, "job not found", "")
	}

	job.Title = req.Title
	job.Description = req.Description
	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperr.FromStore(err, "job not found", "")
	}

	var resp dto.JobResponse
	if err := copier.Copy(&resp, job); err != nil {
		return nil, apperr.Wrap(apperr.KindUnclassified, "error preparing response", err)
	}
	return &resp, nil
}

// Delete removes the job; its vacancies, their tests, applications and
// results fall with the cascade.
func (s *jobService) Delete(jobID uint) error {
	if err := s.jobRepo.Delete(jobID); err != nil {
		return apperr.FromStore(err, "job not found", "")
	}
	return nil
}
