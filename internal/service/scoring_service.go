package service

import (
	"math"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/rs/zerolog/log"
)

// QuizScoringService grades a submitted answer set against a quiz's question
// set. It is pure: no I/O, no state.
type QuizScoringService interface {
	Evaluate(questions []model.Question, answers []dto.SubmittedAnswerDTO) ScoreResult
}

// ScoreResult is the outcome of grading one submission. Answers holds the
// per-question records to be persisted with the attempt; submissions whose
// question ID is not part of the quiz (or repeats an already-graded question)
// appear in neither the counters nor Answers.
type ScoreResult struct {
	CorrectAnswers int
	WrongAnswers   int
	Score          int // round(correct / quiz question count * 100)
	Answers        []model.UserAnswer
}

type quizScoringService struct{}

func NewQuizScoringService() QuizScoringService {
	return &quizScoringService{}
}

func (s *quizScoringService) Evaluate(questions []model.Question, answers []dto.SubmittedAnswerDTO) ScoreResult {
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	var result ScoreResult
	for _, ans := range answers {
		question, exists := questionMap[ans.QuestionID]
		if !exists {
			log.Warn().Uint("questionID", ans.QuestionID).
				Msg("Evaluate: answer references a question outside this quiz, skipping")
			continue
		}
		// Consume the question so a duplicate submission is skipped too.
		delete(questionMap, ans.QuestionID)

		isCorrect := question.CorrectAnswer == ans.SelectedAnswer
		if isCorrect {
			result.CorrectAnswers++
		} else {
			result.WrongAnswers++
		}
		result.Answers = append(result.Answers, model.UserAnswer{
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}

	// The denominator is the full quiz size: skipped questions depress the
	// score rather than shrink the scale.
	if len(questions) > 0 {
		result.Score = int(math.Round(float64(result.CorrectAnswers) / float64(len(questions)) * 100))
	}
	return result
}
