package dto

import "time"

type JobCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type JobUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type JobResponse struct {
	ID          uint      `json:"id"`
	EmployerID  uint      `json:"employer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
