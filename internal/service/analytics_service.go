package service

import (
	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/dto"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/jobdesk/jobdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService derives summary statistics from the stored applications
// and test results. Both views are read-only and stateless per call.
type AnalyticsService interface {
	ApplicantStatistics(applicantID uint) (*dto.ApplicantAnalyticsDTO, error)
	EmployerStatistics(employerID uint) (*dto.EmployerAnalyticsDTO, error)
}

type analyticsService struct {
	applicantRepo repository.ApplicantRepository
	employerRepo  repository.EmployerRepository
	tagRepo       repository.TagRepository
}

func NewAnalyticsService(
	applicantRepo repository.ApplicantRepository,
	employerRepo repository.EmployerRepository,
	tagRepo repository.TagRepository,
) AnalyticsService {
	return &analyticsService{
		applicantRepo: applicantRepo,
		employerRepo:  employerRepo,
		tagRepo:       tagRepo,
	}
}

func (s *analyticsService) ApplicantStatistics(applicantID uint) (*dto.ApplicantAnalyticsDTO, error) {
	applicant, err := s.applicantRepo.FindByIDWithActivity(applicantID)
	if err != nil {
		return nil, apperr.FromStore(err, "applicant not found", "")
	}

	stats := dto.ApplicantAnalyticsDTO{
		TotalApplications: len(applicant.Applications),
		CompletedTests:    len(applicant.TestResults),
		Tags:              []string{},
	}

	vacancyIDs := make([]uint, 0, len(applicant.Applications))
	for _, app := range applicant.Applications {
		vacancyIDs = append(vacancyIDs, app.VacancyID)
		switch app.Status {
		case model.ApplicationStatusAccepted:
			stats.AcceptedApplications++
		case model.ApplicationStatusRejected:
			stats.RejectedApplications++
		}
	}

	if len(applicant.TestResults) > 0 {
		var sum float64
		for _, result := range applicant.TestResults {
			sum += result.Score
		}
		stats.AverageTestScore = sum / float64(len(applicant.TestResults))
	}

	tags, err := s.tagRepo.FindNamesByVacancyIDs(vacancyIDs)
	if err != nil {
		log.Error().Err(err).Uint("applicantID", applicantID).Msg("Failed to collect tags for applicant analytics")
		return nil, apperr.FromStore(err, "", "")
	}
	stats.Tags = tags

	return &stats, nil
}

func (s *analyticsService) EmployerStatistics(employerID uint) (*dto.EmployerAnalyticsDTO, error) {
	employer, err := s.employerRepo.FindByIDWithPortfolio(employerID)
	if err != nil {
		return nil, apperr.FromStore(err, "employer not found", "")
	}

	stats := dto.EmployerAnalyticsDTO{
		TotalJobs: len(employer.Jobs),
	}

	for _, job := range employer.Jobs {
		stats.TotalVacancies += len(job.Vacancies)
		for _, vacancy := range job.Vacancies {
			if vacancy.Status == model.VacancyStatusOpen {
				stats.OpenVacancies++
			}
			stats.TotalApplications += len(vacancy.Applications)
		}
	}

	if stats.TotalVacancies > 0 {
		stats.AverageApplicationsPerVacancy = float64(stats.TotalApplications) / float64(stats.TotalVacancies)
	}

	return &stats, nil
}
