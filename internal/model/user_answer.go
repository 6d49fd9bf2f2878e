package model

import (
	"time"

	"gorm.io/gorm"
)

// UserAnswer records the option a user picked for one question of an attempt.
// IsCorrect is derived once at submission time and never recomputed.
type UserAnswer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	AttemptID      uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedAnswer string         `json:"selected_answer" gorm:"not null"`
	IsCorrect      bool           `json:"is_correct" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
