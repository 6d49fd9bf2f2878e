package dto

import "time"

// QuestionCreateDTO is used within QuizCreateDTO when creating a quiz with
// its full question set.
type QuestionCreateDTO struct {
	Text          string `json:"question" binding:"required"`
	OptionA       string `json:"optionA" binding:"required"`
	OptionB       string `json:"optionB" binding:"required"`
	OptionC       string `json:"optionC" binding:"required"`
	OptionD       string `json:"optionD" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,oneof=A B C D"`
}

type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	TimeLimit   int                 `json:"timeLimit" binding:"required,gt=0"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// QuizSummaryDTO lists a quiz together with its question count.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TimeLimit     int       `json:"timeLimit"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// QuestionDTO is the administrative view of a question, correct answer included.
type QuestionDTO struct {
	ID            uint   `json:"id"`
	QuizID        uint   `json:"quizId"`
	Text          string `json:"question"`
	OptionA       string `json:"optionA"`
	OptionB       string `json:"optionB"`
	OptionC       string `json:"optionC"`
	OptionD       string `json:"optionD"`
	CorrectAnswer string `json:"correctAnswer"`
	Order         int    `json:"order"`
}

// QuizQuestionDTO is the quiz-taking view: the correct answer is stripped.
type QuizQuestionDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"question"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
	OptionC string `json:"optionC"`
	OptionD string `json:"optionD"`
	Order   int    `json:"order"`
}

type QuizDetailDTO struct {
	ID            uint          `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	TimeLimit     int           `json:"timeLimit"`
	QuestionCount int           `json:"questionCount"`
	Questions     []QuestionDTO `json:"questions,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type QuizStartDTO struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	TimeLimit   int               `json:"timeLimit"`
	Questions   []QuizQuestionDTO `json:"questions"`
}
