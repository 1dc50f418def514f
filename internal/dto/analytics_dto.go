package dto

type ApplicantAnalyticsDTO struct {
	TotalApplications    int      `json:"total_applications"`
	AcceptedApplications int      `json:"accepted_applications"`
	RejectedApplications int      `json:"rejected_applications"`
	AverageTestScore     float64  `json:"average_test_score"`
	CompletedTests       int      `json:"completed_tests"`
	Tags                 []string `json:"tags"`
}

type EmployerAnalyticsDTO struct {
	TotalJobs                     int     `json:"total_jobs"`
	TotalVacancies                int     `json:"total_vacancies"`
	OpenVacancies                 int     `json:"open_vacancies"`
	TotalApplications             int     `json:"total_applications"`
	AverageApplicationsPerVacancy float64 `json:"average_applications_per_vacancy"`
}
