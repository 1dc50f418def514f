package model

import "time"

// ApplicantTestResult records a screening-test score (0-100) for the unique
// (applicant, vacancy) pair. It lives and dies with the application.
type ApplicantTestResult struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ApplicantID uint      `json:"applicant_id" gorm:"not null;uniqueIndex:idx_applicant_vacancy"`
	VacancyID   uint      `json:"vacancy_id" gorm:"not null;uniqueIndex:idx_applicant_vacancy"`
	Score       float64   `json:"score" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
