package dto

import "time"

type OverviewDTO struct {
	TotalAttempts  int `json:"totalAttempts"`
	AverageScore   int `json:"averageScore"`
	Accuracy       int `json:"accuracy"`
	TotalQuestions int `json:"totalQuestions"`
	TotalCorrect   int `json:"totalCorrect"`
}

// RecentAttemptDTO is one of the last 10 attempts, in chronological order.
type RecentAttemptDTO struct {
	ID          uint      `json:"id"`
	QuizTitle   string    `json:"quizTitle"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}

// QuizStatDTO is the per-quiz performance breakdown, keyed by quiz ID.
type QuizStatDTO struct {
	QuizID       uint   `json:"quizId"`
	QuizTitle    string `json:"quizTitle"`
	Attempts     int    `json:"attempts"`
	BestScore    int    `json:"bestScore"`
	AverageScore int    `json:"averageScore"`
}

type AnalyticsOverviewDTO struct {
	Overview       OverviewDTO        `json:"overview"`
	RecentAttempts []RecentAttemptDTO `json:"recentAttempts"`
	QuizStats      []QuizStatDTO      `json:"quizStats"`
}

// GraphPointDTO is per-day attempt performance within the lookback window.
type GraphPointDTO struct {
	Date         string `json:"date"` // YYYY-MM-DD, UTC
	AverageScore int    `json:"averageScore"`
	Attempts     int    `json:"attempts"`
}

type PerformanceGraphDTO struct {
	GraphData []GraphPointDTO `json:"graphData"`
}

// SubjectStatDTO groups performance by quiz title.
type SubjectStatDTO struct {
	Subject       string `json:"subject"`
	TotalAttempts int    `json:"totalAttempts"`
	Accuracy      int    `json:"accuracy"`
	AverageScore  int    `json:"averageScore"`
	BestScore     int    `json:"bestScore"`
}

type SubjectBreakdownDTO struct {
	Subjects []SubjectStatDTO `json:"subjects"`
}
