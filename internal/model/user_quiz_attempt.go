package model

import (
	"time"

	"gorm.io/gorm"
)

// UserQuizAttempt is one completed play-through of a quiz. Rows are
// append-only: they are created in full at submission time and never updated.
type UserQuizAttempt struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	QuizID         uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz           Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score          int            `json:"score" gorm:"not null"` // integer percentage
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	CorrectAnswers int            `json:"correct_answers" gorm:"not null"`
	WrongAnswers   int            `json:"wrong_answers" gorm:"not null"`
	TimeTaken      int            `json:"time_taken" gorm:"not null"` // seconds
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    time.Time      `json:"completed_at" gorm:"index"`
	UserAnswers    []UserAnswer   `json:"user_answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
