package model

import "time"

// Question is a four-option multiple-choice item. CorrectAnswer is the
// 1-indexed option number (1..4).
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TestID        uint      `json:"test_id" gorm:"not null;index"`
	QuestionText  string    `json:"question_text" gorm:"type:text;not null"`
	Option1       string    `json:"option1" gorm:"not null"`
	Option2       string    `json:"option2" gorm:"not null"`
	Option3       string    `json:"option3" gorm:"not null"`
	Option4       string    `json:"option4" gorm:"not null"`
	CorrectAnswer int       `json:"correct_answer" gorm:"not null;check:correct_answer BETWEEN 1 AND 4"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
