package dto

import "time"

type ResumeRequest struct {
	PersonalInfo   string `json:"personal_info" binding:"required"`
	WorkExperience string `json:"work_experience"`
}

type ResumeResponse struct {
	ID             uint      `json:"id"`
	ApplicantID    uint      `json:"applicant_id"`
	PersonalInfo   string    `json:"personal_info"`
	WorkExperience string    `json:"work_experience"`
	UpdatedAt      time.Time `json:"updated_at"`
}
