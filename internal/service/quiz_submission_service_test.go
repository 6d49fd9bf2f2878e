package service

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
)

type fakeQuizRepo struct {
	quizzes    map[uint]*model.Quiz
	withCounts []repository.QuizWithCount
	created    []*model.Quiz
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	quiz.ID = uint(len(f.created) + 100)
	f.created = append(f.created, quiz)
	return nil
}

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	return f.FindByIDWithQuestions(id)
}

func (f *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizRepo) CountQuestions(quizID uint) (int, error) {
	quiz, ok := f.quizzes[quizID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return len(quiz.Questions), nil
}

func (f *fakeQuizRepo) FindAllWithQuestionCount() ([]repository.QuizWithCount, error) {
	return f.withCounts, nil
}

// recordingAttemptRepo persists attempts in memory, assigning IDs like the
// database would.
type recordingAttemptRepo struct {
	fakeAttemptRepo
	created []*model.UserQuizAttempt
}

func (r *recordingAttemptRepo) Create(attempt *model.UserQuizAttempt) error {
	attempt.ID = uint(len(r.created) + 1)
	for i := range attempt.UserAnswers {
		attempt.UserAnswers[i].ID = uint(i + 1)
		attempt.UserAnswers[i].AttemptID = attempt.ID
	}
	r.created = append(r.created, attempt)
	return nil
}

func (r *recordingAttemptRepo) FindByIDAndUser(id, userID uint) (*model.UserQuizAttempt, error) {
	for _, a := range r.created {
		if a.ID == id && a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func submissionFixture() (*fakeQuizRepo, *recordingAttemptRepo, QuizSubmissionService) {
	quizRepo := &fakeQuizRepo{quizzes: map[uint]*model.Quiz{
		1: {
			ID:    1,
			Title: "Go Basics",
			Questions: []model.Question{
				{ID: 1, QuizID: 1, CorrectAnswer: "A", Order: 1},
				{ID: 2, QuizID: 1, CorrectAnswer: "B", Order: 2},
				{ID: 3, QuizID: 1, CorrectAnswer: "C", Order: 3},
			},
		},
		2: {ID: 2, Title: "Empty Quiz"},
	}}
	attemptRepo := &recordingAttemptRepo{}
	svc := NewQuizSubmissionService(quizRepo, attemptRepo, NewQuizScoringService())
	return quizRepo, attemptRepo, svc
}

func TestSubmitQuizAllCorrect(t *testing.T) {
	_, attemptRepo, svc := submissionFixture()

	started := time.Now().Add(-2 * time.Minute)
	resp, err := svc.SubmitQuiz(7, dto.QuizSubmitDTO{
		QuizID: 1,
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: 1, SelectedAnswer: "A"},
			{QuestionID: 2, SelectedAnswer: "B"},
			{QuestionID: 3, SelectedAnswer: "C"},
		},
		TimeTaken: 120,
		StartedAt: started,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Attempt.Score != 100 || resp.Attempt.CorrectAnswers != 3 || resp.Attempt.WrongAnswers != 0 {
		t.Errorf("unexpected attempt summary: %+v", resp.Attempt)
	}
	if resp.Attempt.TotalQuestions != 3 || resp.Attempt.TimeTaken != 120 {
		t.Errorf("unexpected attempt metadata: %+v", resp.Attempt)
	}
	if len(resp.UserAnswers) != 3 {
		t.Errorf("expected 3 answer records, got %d", len(resp.UserAnswers))
	}

	if len(attemptRepo.created) != 1 {
		t.Fatalf("expected one persisted attempt, got %d", len(attemptRepo.created))
	}
	saved := attemptRepo.created[0]
	if saved.UserID != 7 || saved.QuizID != 1 || len(saved.UserAnswers) != 3 {
		t.Errorf("unexpected persisted attempt: %+v", saved)
	}
	if !saved.StartedAt.Equal(started) {
		t.Errorf("startedAt not preserved: %v", saved.StartedAt)
	}
}

func TestSubmitQuizForeignQuestionExcluded(t *testing.T) {
	_, attemptRepo, svc := submissionFixture()

	resp, err := svc.SubmitQuiz(7, dto.QuizSubmitDTO{
		QuizID: 1,
		Answers: []dto.SubmittedAnswerDTO{
			{QuestionID: 1, SelectedAnswer: "A"},
			{QuestionID: 999, SelectedAnswer: "A"}, // belongs to no quiz
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Attempt.CorrectAnswers != 1 || resp.Attempt.WrongAnswers != 0 {
		t.Errorf("foreign answer must not be graded: %+v", resp.Attempt)
	}
	if resp.Attempt.Score != 33 { // 1/3 rounds to 33
		t.Errorf("expected score 33, got %d", resp.Attempt.Score)
	}
	if len(attemptRepo.created[0].UserAnswers) != 1 {
		t.Errorf("foreign answer must not be persisted, got %d records",
			len(attemptRepo.created[0].UserAnswers))
	}
}

func TestSubmitQuizNotFound(t *testing.T) {
	_, _, svc := submissionFixture()

	_, err := svc.SubmitQuiz(7, dto.QuizSubmitDTO{QuizID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitQuizWithoutQuestions(t *testing.T) {
	_, attemptRepo, svc := submissionFixture()

	_, err := svc.SubmitQuiz(7, dto.QuizSubmitDTO{QuizID: 2})
	if !errors.Is(err, ErrQuizHasNoQuestions) {
		t.Errorf("expected ErrQuizHasNoQuestions, got %v", err)
	}
	if len(attemptRepo.created) != 0 {
		t.Error("no attempt may be recorded for an empty quiz")
	}
}

func TestGetAttemptOwnership(t *testing.T) {
	_, _, svc := submissionFixture()

	resp, err := svc.SubmitQuiz(7, dto.QuizSubmitDTO{
		QuizID:  1,
		Answers: []dto.SubmittedAnswerDTO{{QuestionID: 1, SelectedAnswer: "A"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetAttempt(resp.Attempt.ID, 7); err != nil {
		t.Errorf("owner must see the attempt: %v", err)
	}

	// Another user gets the same not-found as a missing attempt.
	if _, err := svc.GetAttempt(resp.Attempt.ID, 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for non-owner, got %v", err)
	}
}

func TestGetHistoryMapsAttempts(t *testing.T) {
	_, attemptRepo, svc := submissionFixture()
	attemptRepo.attempts = []model.UserQuizAttempt{
		{
			ID:             1,
			QuizID:         1,
			Quiz:           model.Quiz{ID: 1, Title: "Go Basics"},
			Score:          67,
			CorrectAnswers: 2,
			WrongAnswers:   1,
			TotalQuestions: 3,
			TimeTaken:      90,
			CompletedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	items, err := svc.GetHistory(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 history item, got %d", len(items))
	}
	item := items[0]
	if item.QuizTitle != "Go Basics" || item.Score != 67 || item.TotalQuestions != 3 {
		t.Errorf("unexpected history item: %+v", item)
	}
}
