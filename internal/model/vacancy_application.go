package model

import "time"

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusFailed   = "failed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// VacancyApplication links an applicant to a vacancy; the pair is unique so
// an applicant holds at most one application per vacancy. Pending is the only
// state an employer decision may act on.
type VacancyApplication struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	VacancyID   uint      `json:"vacancy_id" gorm:"not null;uniqueIndex:idx_vacancy_applicant"`
	ApplicantID uint      `json:"applicant_id" gorm:"not null;uniqueIndex:idx_vacancy_applicant"`
	Applicant   Applicant `json:"applicant,omitempty" gorm:"foreignKey:ApplicantID"`
	Status      string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Terminal reports whether the application may no longer change state.
func (a *VacancyApplication) Terminal() bool {
	return a.Status != ApplicationStatusPending
}
