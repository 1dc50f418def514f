package model

import "time"

type Job struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	EmployerID  uint      `json:"employer_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Vacancies   []Vacancy `json:"vacancies,omitempty" gorm:"foreignKey:JobID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
