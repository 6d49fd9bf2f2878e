package service

import (
	"fmt"
	"time"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuizSubmissionService handles scoring a submission, persisting the attempt
// with its answer batch, and reading attempt history back.
type QuizSubmissionService interface {
	SubmitQuiz(userID uint, req dto.QuizSubmitDTO) (*dto.SubmitResponseDTO, error)
	GetAttempt(attemptID, userID uint) (*dto.AttemptDetailDTO, error)
	GetHistory(userID uint) ([]dto.AttemptHistoryItemDTO, error)
}

type quizSubmissionService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	scorer      QuizScoringService
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	scorer QuizScoringService,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		scorer:      scorer,
	}
}

func (s *quizSubmissionService) SubmitQuiz(userID uint, req dto.QuizSubmitDTO) (*dto.SubmitResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("quiz %d: %w", req.QuizID, ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", req.QuizID).Msg("SubmitQuiz: failed to load quiz")
		return nil, fmt.Errorf("fetching quiz %d: %w", req.QuizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d: %w", req.QuizID, ErrQuizHasNoQuestions)
	}

	result := s.scorer.Evaluate(quiz.Questions, req.Answers)

	attempt := model.UserQuizAttempt{
		UserID:         userID,
		QuizID:         quiz.ID,
		Score:          result.Score,
		TotalQuestions: len(quiz.Questions),
		CorrectAnswers: result.CorrectAnswers,
		WrongAnswers:   result.WrongAnswers,
		TimeTaken:      req.TimeTaken,
		StartedAt:      req.StartedAt,
		CompletedAt:    time.Now(),
		UserAnswers:    result.Answers,
	}

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Uint("userID", userID).
			Msg("SubmitQuiz: failed to persist attempt")
		return nil, fmt.Errorf("persisting attempt: %w", err)
	}

	log.Info().Uint("attemptID", attempt.ID).Uint("quizID", quiz.ID).Uint("userID", userID).
		Int("score", attempt.Score).Msg("SubmitQuiz: attempt recorded")

	resp := dto.SubmitResponseDTO{
		Attempt: dto.AttemptSummaryDTO{
			ID:             attempt.ID,
			Score:          attempt.Score,
			CorrectAnswers: attempt.CorrectAnswers,
			WrongAnswers:   attempt.WrongAnswers,
			TotalQuestions: attempt.TotalQuestions,
			TimeTaken:      attempt.TimeTaken,
			CompletedAt:    attempt.CompletedAt,
		},
		UserAnswers: make([]dto.UserAnswerDTO, 0, len(attempt.UserAnswers)),
	}
	for _, ans := range attempt.UserAnswers {
		resp.UserAnswers = append(resp.UserAnswers, dto.UserAnswerDTO{
			ID:             ans.ID,
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
		})
	}
	return &resp, nil
}

func (s *quizSubmissionService) GetAttempt(attemptID, userID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDAndUser(attemptID, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: repository error")
		return nil, fmt.Errorf("fetching attempt %d: %w", attemptID, err)
	}

	var resp dto.AttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("GetAttempt: failed to copy attempt to DTO")
		return nil, fmt.Errorf("preparing attempt response: %w", err)
	}
	resp.QuizTitle = attempt.Quiz.Title

	resp.UserAnswers = make([]dto.UserAnswerDTO, 0, len(attempt.UserAnswers))
	for _, ans := range attempt.UserAnswers {
		answerDTO := dto.UserAnswerDTO{
			ID:             ans.ID,
			QuestionID:     ans.QuestionID,
			SelectedAnswer: ans.SelectedAnswer,
			IsCorrect:      ans.IsCorrect,
		}
		if ans.Question.ID != 0 {
			var questionDTO dto.QuestionDTO
			copier.Copy(&questionDTO, &ans.Question)
			answerDTO.Question = &questionDTO
		}
		resp.UserAnswers = append(resp.UserAnswers, answerDTO)
	}
	return &resp, nil
}

func (s *quizSubmissionService) GetHistory(userID uint) ([]dto.AttemptHistoryItemDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: repository error")
		return nil, fmt.Errorf("fetching attempt history: %w", err)
	}

	items := make([]dto.AttemptHistoryItemDTO, 0, len(attempts))
	for _, attempt := range attempts {
		items = append(items, dto.AttemptHistoryItemDTO{
			ID:             attempt.ID,
			QuizID:         attempt.QuizID,
			QuizTitle:      attempt.Quiz.Title,
			Score:          attempt.Score,
			CorrectAnswers: attempt.CorrectAnswers,
			WrongAnswers:   attempt.WrongAnswers,
			TotalQuestions: attempt.TotalQuestions,
			TimeTaken:      attempt.TimeTaken,
			CompletedAt:    attempt.CompletedAt,
		})
	}
	return items, nil
}
