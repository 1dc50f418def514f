package model

type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	Vacancies []Vacancy `json:"vacancies,omitempty" gorm:"many2many:vacancy_tags"`
}
