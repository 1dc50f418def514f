package model

import "time"

// Resume is the applicant's profile content, one per applicant. An applicant
// without a resume may not apply to any vacancy.
type Resume struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	ApplicantID    uint      `json:"applicant_id" gorm:"not null;uniqueIndex"`
	PersonalInfo   string    `json:"personal_info" gorm:"type:text"`
	WorkExperience string    `json:"work_experience" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
