package model

import "time"

type Applicant struct {
	ID           uint                  `gorm:"primarykey" json:"id"`
	Name         string                `json:"name" gorm:"not null"`
	Email        string                `json:"email" gorm:"not null;uniqueIndex"`
	Password     string                `json:"-" gorm:"not null"`
	Status       string                `json:"status" gorm:"default:'inactive'"` // "inactive", "active"
	Resume       *Resume               `json:"resume,omitempty" gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Applications []VacancyApplication  `json:"applications,omitempty" gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TestResults  []ApplicantTestResult `json:"test_results,omitempty" gorm:"foreignKey:ApplicantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
