package service

import (
	"errors"
	"testing"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
)

func TestGetAllQuizzesIncludesCounts(t *testing.T) {
	repo := &fakeQuizRepo{withCounts: []repository.QuizWithCount{
		{Quiz: model.Quiz{ID: 1, Title: "Go Basics", TimeLimit: 600}, QuestionCount: 5},
		{Quiz: model.Quiz{ID: 2, Title: "Empty Quiz"}, QuestionCount: 0},
	}}
	svc := NewQuizService(repo)

	quizzes, err := svc.GetAllQuizzes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	if quizzes[0].QuestionCount != 5 || quizzes[0].TimeLimit != 600 {
		t.Errorf("unexpected first summary: %+v", quizzes[0])
	}
	if quizzes[1].QuestionCount != 0 {
		t.Errorf("expected zero count for empty quiz, got %d", quizzes[1].QuestionCount)
	}
}

func TestStartQuizStripsCorrectAnswers(t *testing.T) {
	repo := &fakeQuizRepo{quizzes: map[uint]*model.Quiz{
		1: {
			ID:    1,
			Title: "Go Basics",
			Questions: []model.Question{
				{ID: 1, Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "B", Order: 1},
			},
		},
	}}
	svc := NewQuizService(repo)

	quiz, err := svc.StartQuiz(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz.Questions))
	}
	q := quiz.Questions[0]
	if q.Text != "Q1" || q.OptionB != "b" || q.Order != 1 {
		t.Errorf("unexpected question payload: %+v", q)
	}
	// QuizQuestionDTO has no CorrectAnswer field; the admin view does.
	admin, err := svc.GetQuiz(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.Questions[0].CorrectAnswer != "B" {
		t.Errorf("admin view must include the correct answer, got %q", admin.Questions[0].CorrectAnswer)
	}
}

func TestStartQuizNotFound(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{quizzes: map[uint]*model.Quiz{}})

	if _, err := svc.StartQuiz(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateQuizAssignsQuestionOrder(t *testing.T) {
	repo := &fakeQuizRepo{}
	svc := NewQuizService(repo)

	quiz, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:     "New Quiz",
		TimeLimit: 300,
		Questions: []dto.QuestionCreateDTO{
			{Text: "Q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "A"},
			{Text: "Q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswer: "D"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quiz.QuestionCount != 2 {
		t.Errorf("expected questionCount 2, got %d", quiz.QuestionCount)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted quiz, got %d", len(repo.created))
	}
	saved := repo.created[0]
	for i, q := range saved.Questions {
		if q.Order != i+1 {
			t.Errorf("question %d: expected order %d, got %d", i, i+1, q.Order)
		}
	}
}
