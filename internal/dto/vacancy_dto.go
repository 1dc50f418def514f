package dto

import "time"

type VacancyCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Salary      float64 `json:"salary" binding:"gte=0"`
	TagIDs      []uint  `json:"tag_ids"`
}

// VacancyUpdateRequest replaces the vacancy fields and its whole tag set.
type VacancyUpdateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Salary      float64 `json:"salary" binding:"gte=0"`
	TagIDs      []uint  `json:"tag_ids"`
}

type VacancyResponse struct {
	ID           uint                  `json:"id"`
	JobID        uint                  `json:"job_id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Salary       float64               `json:"salary"`
	Status       string                `json:"status"`
	Tags         []TagResponse         `json:"tags,omitempty"`
	Test         *TestResponse         `json:"test,omitempty"`
	Applications []ApplicationResponse `json:"applications,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}
