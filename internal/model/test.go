package model

import "time"

// Test is the optional screening quiz attached to a vacancy, one per vacancy.
type Test struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	VacancyID uint       `json:"vacancy_id" gorm:"not null;uniqueIndex"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
