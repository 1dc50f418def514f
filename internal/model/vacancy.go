package model

import "time"

const (
	VacancyStatusOpen   = "open"
	VacancyStatusClosed = "closed"
)

type Vacancy struct {
	ID           uint                  `gorm:"primarykey" json:"id"`
	JobID        uint                  `json:"job_id" gorm:"not null;index"`
	Job          Job                   `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Title        string                `json:"title" gorm:"not null"`
	Description  string                `json:"description" gorm:"type:text"`
	Salary       float64               `json:"salary" gorm:"not null;check:salary >= 0"`
	Status       string                `json:"status" gorm:"default:'open'"`
	Tags         []Tag                 `json:"tags,omitempty" gorm:"many2many:vacancy_tags;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Test         *Test                 `json:"test,omitempty" gorm:"foreignKey:VacancyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Applications []VacancyApplication  `json:"applications,omitempty" gorm:"foreignKey:VacancyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TestResults  []ApplicantTestResult `json:"test_results,omitempty" gorm:"foreignKey:VacancyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
