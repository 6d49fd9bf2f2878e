package service

import (
	"fmt"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuiz(quizID uint) (*dto.QuizDetailDTO, error)
	StartQuiz(quizID uint) (*dto.QuizStartDTO, error)
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: repository error")
		return nil, fmt.Errorf("fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzesWithCount))
	for _, qwc := range quizzesWithCount {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			Title:         qwc.Quiz.Title,
			Description:   qwc.Quiz.Description,
			TimeLimit:     qwc.Quiz.TimeLimit,
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return summaries, nil
}

// GetQuiz returns the administrative view of a quiz, correct answers included.
func (s *quizService) GetQuiz(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuiz: repository error")
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}
	return quizToDetailDTO(quiz)
}

// StartQuiz returns the quiz-taking view with the correct answers stripped.
func (s *quizService) StartQuiz(quizID uint) (*dto.QuizStartDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("quiz %d: %w", quizID, ErrNotFound)
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("StartQuiz: repository error")
		return nil, fmt.Errorf("fetching quiz %d: %w", quizID, err)
	}

	resp := dto.QuizStartDTO{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		TimeLimit:   quiz.TimeLimit,
		Questions:   make([]dto.QuizQuestionDTO, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuizQuestionDTO{
			ID:      q.ID,
			Text:    q.Text,
			OptionA: q.OptionA,
			OptionB: q.OptionB,
			OptionC: q.OptionC,
			OptionD: q.OptionD,
			Order:   q.Order,
		})
	}
	return &resp, nil
}

func (s *quizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		TimeLimit:   req.TimeLimit,
		Questions:   make([]model.Question, 0, len(req.Questions)),
	}
	// Question order follows input position, 1-based.
	for i, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:          q.Text,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			CorrectAnswer: q.CorrectAnswer,
			Order:         i + 1,
		})
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: repository error")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}
	log.Info().Uint("quizID", quiz.ID).Int("questions", len(quiz.Questions)).Msg("CreateQuiz: quiz created")
	return quizToDetailDTO(&quiz)
}

func quizToDetailDTO(quiz *model.Quiz) (*dto.QuizDetailDTO, error) {
	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("quizToDetailDTO: copy failed")
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	resp.QuestionCount = len(quiz.Questions)
	resp.Questions = make([]dto.QuestionDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		var questionDTO dto.QuestionDTO
		copier.Copy(&questionDTO, &q)
		resp.Questions = append(resp.Questions, questionDTO)
	}
	return &resp, nil
}
