package service

import (
	"testing"

	"github.com/jobdesk/jobdesk/internal/apperr"
	"github.com/jobdesk/jobdesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantStatistics(t *testing.T) {
	applicant := &model.Applicant{
		ID:    3,
		Name:  "Ada",
		Email: "ada@example.com",
		Applications: []model.VacancyApplication{
			{VacancyID: 1, ApplicantID: 3, Status: model.ApplicationStatusAccepted},
			{VacancyID: 2, ApplicantID: 3, Status: model.ApplicationStatusAccepted},
			{VacancyID: 4, ApplicantID: 3, Status: model.ApplicationStatusRejected},
		},
		TestResults: []model.ApplicantTestResult{
			{VacancyID: 1, ApplicantID: 3, Score: 80},
			{VacancyID: 4, ApplicantID: 3, Score: 60},
		},
	}

	tagRepo := newFakeTagRepo()
	tagRepo.namesByVacancy[1] = []string{"go", "backend"}
	tagRepo.namesByVacancy[2] = []string{"go"}
	tagRepo.namesByVacancy[4] = []string{"sql"}

	svc := NewAnalyticsService(newFakeApplicantRepo(applicant), newFakeEmployerRepo(), tagRepo)

	stats, err := svc.ApplicantStatistics(3)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalApplications)
	assert.Equal(t, 2, stats.AcceptedApplications)
	assert.Equal(t, 1, stats.RejectedApplications)
	assert.Equal(t, 2, stats.CompletedTests)
	assert.InDelta(t, 70.0, stats.AverageTestScore, 1e-9)
	assert.ElementsMatch(t, []string{"go", "backend", "sql"}, stats.Tags)
}

func TestApplicantStatisticsWithNoActivity(t *testing.T) {
	applicant := &model.Applicant{ID: 5, Name: "Eve", Email: "eve@example.com"}
	svc := NewAnalyticsService(newFakeApplicantRepo(applicant), newFakeEmployerRepo(), newFakeTagRepo())

	stats, err := svc.ApplicantStatistics(5)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalApplications)
	assert.Zero(t, stats.CompletedTests)
	assert.Zero(t, stats.AverageTestScore)
	assert.NotNil(t, stats.Tags)
	assert.Empty(t, stats.Tags)
}

func TestApplicantStatisticsUnknownApplicant(t *testing.T) {
	svc := NewAnalyticsService(newFakeApplicantRepo(), newFakeEmployerRepo(), newFakeTagRepo())

	_, err := svc.ApplicantStatistics(42)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEmployerStatistics(t *testing.T) {
	employer := &model.Employer{
		ID:    2,
		Name:  "Acme",
		Email: "hr@acme.example",
		Jobs: []model.Job{
			{
				ID: 1,
				Vacancies: []model.Vacancy{
					{ID: 1, Status: model.VacancyStatusOpen, Applications: []model.VacancyApplication{{VacancyID: 1, ApplicantID: 1}, {VacancyID: 1, ApplicantID: 2}}},
					{ID: 2, Status: model.VacancyStatusClosed, Applications: []model.VacancyApplication{{VacancyID: 2, ApplicantID: 1}}},
				},
			},
			{
				ID: 2,
				Vacancies: []model.Vacancy{
					{ID: 3, Status: model.VacancyStatusOpen},
				},
			},
		},
	}

	svc := NewAnalyticsService(newFakeApplicantRepo(), newFakeEmployerRepo(employer), newFakeTagRepo())

	stats, err := svc.EmployerStatistics(2)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalJobs)
	assert.Equal(t, 3, stats.TotalVacancies)
	assert.Equal(t, 2, stats.OpenVacancies)
	assert.Equal(t, 3, stats.TotalApplications)
	assert.InDelta(t, 1.0, stats.AverageApplicationsPerVacancy, 1e-9)
}

func TestEmployerStatisticsWithoutVacancies(t *testing.T) {
	employer := &model.Employer{ID: 9, Name: "Empty Co", Email: "empty@example.com"}
	svc := NewAnalyticsService(newFakeApplicantRepo(), newFakeEmployerRepo(employer), newFakeTagRepo())

	stats, err := svc.EmployerStatistics(9)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalVacancies)
	assert.Zero(t, stats.AverageApplicationsPerVacancy)
}
