package dto

import "time"

// SubmittedAnswerDTO is one answer in a quiz submission.
type SubmittedAnswerDTO struct {
	QuestionID     uint   `json:"questionId" binding:"required"`
	SelectedAnswer string `json:"selectedAnswer" binding:"required,oneof=A B C D"`
}

// An empty answers list is a valid submission and scores zero.
type QuizSubmitDTO struct {
	QuizID    uint                 `json:"quizId" binding:"required"`
	Answers   []SubmittedAnswerDTO `json:"answers" binding:"dive"`
	TimeTaken int                  `json:"timeTaken"`
	StartedAt time.Time            `json:"startedAt"`
}

type UserAnswerDTO struct {
	ID             uint         `json:"id"`
	QuestionID     uint         `json:"questionId"`
	SelectedAnswer string       `json:"selectedAnswer"`
	IsCorrect      bool         `json:"isCorrect"`
	Question       *QuestionDTO `json:"question,omitempty"`
}

// AttemptSummaryDTO is the scoring result returned right after submission.
type AttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeTaken      int       `json:"timeTaken"`
	CompletedAt    time.Time `json:"completedAt"`
}

type SubmitResponseDTO struct {
	Attempt     AttemptSummaryDTO `json:"attempt"`
	UserAnswers []UserAnswerDTO   `json:"userAnswers"`
}

// AttemptDetailDTO is the full record of one attempt, answers included.
type AttemptDetailDTO struct {
	ID             uint            `json:"id"`
	QuizID         uint            `json:"quizId"`
	QuizTitle      string          `json:"quizTitle,omitempty"`
	Score          int             `json:"score"`
	CorrectAnswers int             `json:"correctAnswers"`
	WrongAnswers   int             `json:"wrongAnswers"`
	TotalQuestions int             `json:"totalQuestions"`
	TimeTaken      int             `json:"timeTaken"`
	StartedAt      time.Time       `json:"startedAt"`
	CompletedAt    time.Time       `json:"completedAt"`
	UserAnswers    []UserAnswerDTO `json:"userAnswers,omitempty"`
}

type AttemptDetailResponseDTO struct {
	Attempt AttemptDetailDTO `json:"attempt"`
}

// AttemptHistoryItemDTO is one row of a user's attempt history.
type AttemptHistoryItemDTO struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quizId"`
	QuizTitle      string    `json:"quizTitle,omitempty"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	WrongAnswers   int       `json:"wrongAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TimeTaken      int       `json:"timeTaken"`
	CompletedAt    time.Time `json:"completedAt"`
}

type AttemptHistoryResponseDTO struct {
	Attempts []AttemptHistoryItemDTO `json:"attempts"`
}
