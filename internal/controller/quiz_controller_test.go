package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/service"
)

type stubQuizService struct {
	quizzes map[uint]*dto.QuizDetailDTO
}

func (s *stubQuizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	summaries := make([]dto.QuizSummaryDTO, 0, len(s.quizzes))
	for _, q := range s.quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{ID: q.ID, Title: q.Title, QuestionCount: q.QuestionCount})
	}
	return summaries, nil
}

func (s *stubQuizService) GetQuiz(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz %d: %w", quizID, service.ErrNotFound)
	}
	return quiz, nil
}

func (s *stubQuizService) StartQuiz(quizID uint) (*dto.QuizStartDTO, error) {
	quiz, ok := s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz %d: %w", quizID, service.ErrNotFound)
	}
	return &dto.QuizStartDTO{ID: quiz.ID, Title: quiz.Title}, nil
}

func (s *stubQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizDetailDTO, error) {
	return &dto.QuizDetailDTO{ID: 99, Title: req.Title, QuestionCount: len(req.Questions)}, nil
}

type stubSubmissionService struct {
	submitErr  error
	lastUserID uint
}

func (s *stubSubmissionService) SubmitQuiz(userID uint, req dto.QuizSubmitDTO) (*dto.SubmitResponseDTO, error) {
	s.lastUserID = userID
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &dto.SubmitResponseDTO{
		Attempt: dto.AttemptSummaryDTO{ID: 1, Score: 100, CorrectAnswers: len(req.Answers)},
	}, nil
}

func (s *stubSubmissionService) GetAttempt(attemptID, userID uint) (*dto.AttemptDetailDTO, error) {
	return nil, fmt.Errorf("attempt %d: %w", attemptID, service.ErrNotFound)
}

func (s *stubSubmissionService) GetHistory(userID uint) ([]dto.AttemptHistoryItemDTO, error) {
	return []dto.AttemptHistoryItemDTO{}, nil
}

func quizTestRouter(quizzes *stubQuizService, submissions *stubSubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewQuizController(quizzes, submissions)

	r := gin.New()
	// Stand-in for RequireAuth: inject a fixed caller identity.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(7))
	})
	group := r.Group("/api/quiz")
	{
		group.GET("/:id", ctrl.GetQuiz)
		group.POST("/submit", ctrl.SubmitQuiz)
		group.GET("/attempts/:id", ctrl.GetAttempt)
	}
	return r
}

func TestSubmitQuizEndpoint(t *testing.T) {
	submissions := &stubSubmissionService{}
	r := quizTestRouter(&stubQuizService{}, submissions)

	body := `{"quizId":1,"answers":[{"questionId":1,"selectedAnswer":"A"}],"timeTaken":60}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if submissions.lastUserID != 7 {
		t.Errorf("expected caller ID 7, got %d", submissions.lastUserID)
	}

	var resp dto.SubmitResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Attempt.Score != 100 {
		t.Errorf("unexpected attempt: %+v", resp.Attempt)
	}
}

func TestSubmitQuizEndpointInvalidAnswer(t *testing.T) {
	r := quizTestRouter(&stubQuizService{}, &stubSubmissionService{})

	// "E" fails the oneof binding on selectedAnswer.
	body := `{"quizId":1,"answers":[{"questionId":1,"selectedAnswer":"E"}],"timeTaken":60}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSubmitQuizEndpointQuizNotFound(t *testing.T) {
	submissions := &stubSubmissionService{submitErr: fmt.Errorf("quiz 42: %w", service.ErrNotFound)}
	r := quizTestRouter(&stubQuizService{}, submissions)

	body := `{"quizId":42,"answers":[],"timeTaken":10}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitQuizEndpointEmptyQuiz(t *testing.T) {
	submissions := &stubSubmissionService{submitErr: fmt.Errorf("quiz 2: %w", service.ErrQuizHasNoQuestions)}
	r := quizTestRouter(&stubQuizService{}, submissions)

	body := `{"quizId":2,"answers":[],"timeTaken":10}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quiz/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetQuizEndpointNotFound(t *testing.T) {
	r := quizTestRouter(&stubQuizService{quizzes: map[uint]*dto.QuizDetailDTO{}}, &stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetQuizEndpointBadID(t *testing.T) {
	r := quizTestRouter(&stubQuizService{}, &stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGetAttemptEndpointNotFound(t *testing.T) {
	r := quizTestRouter(&stubQuizService{}, &stubSubmissionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/attempts/9", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
