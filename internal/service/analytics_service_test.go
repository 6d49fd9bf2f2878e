package service

import (
	"testing"
	"time"

	"github.com/datlq-dev/quizhub/internal/model"
)

func attemptAt(quizID uint, title string, score, total, correct int, completedAt time.Time) model.UserQuizAttempt {
	return model.UserQuizAttempt{
		QuizID:         quizID,
		Quiz:           model.Quiz{ID: quizID, Title: title},
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		WrongAnswers:   total - correct,
		CompletedAt:    completedAt,
	}
}

type fakeAttemptRepo struct {
	attempts   []model.UserQuizAttempt
	lastSince  time.Time
	sinceCalls int
}

func (f *fakeAttemptRepo) Create(attempt *model.UserQuizAttempt) error { return nil }

func (f *fakeAttemptRepo) FindByIDAndUser(id, userID uint) (*model.UserQuizAttempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) FindAllByUser(userID uint) ([]model.UserQuizAttempt, error) {
	return f.attempts, nil
}

func (f *fakeAttemptRepo) FindAllByUserChronological(userID uint) ([]model.UserQuizAttempt, error) {
	return f.attempts, nil
}

func (f *fakeAttemptRepo) FindByUserSince(userID uint, since time.Time) ([]model.UserQuizAttempt, error) {
	f.lastSince = since
	f.sinceCalls++
	return f.attempts, nil
}

func TestGetOverviewNoAttempts(t *testing.T) {
	svc := NewAnalyticsService(&fakeAttemptRepo{})

	result, err := svc.GetOverview(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o := result.Overview
	if o.TotalAttempts != 0 || o.AverageScore != 0 || o.TotalQuestions != 0 || o.TotalCorrect != 0 || o.Accuracy != 0 {
		t.Errorf("expected zero overview, got %+v", o)
	}
	if result.RecentAttempts == nil || len(result.RecentAttempts) != 0 {
		t.Error("recentAttempts must be an empty list, not nil")
	}
	if result.QuizStats == nil || len(result.QuizStats) != 0 {
		t.Error("quizStats must be an empty list, not nil")
	}
}

func TestBuildOverviewTotalsAndQuizStats(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	attempts := []model.UserQuizAttempt{
		attemptAt(1, "JavaScript Fundamentals", 80, 5, 4, base),
		attemptAt(2, "Go Basics", 60, 5, 3, base.Add(time.Hour)),
		attemptAt(1, "JavaScript Fundamentals", 100, 5, 5, base.Add(2*time.Hour)),
	}

	result := buildOverview(attempts)

	o := result.Overview
	if o.TotalAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", o.TotalAttempts)
	}
	if o.AverageScore != 80 { // (80+60+100)/3
		t.Errorf("expected average 80, got %d", o.AverageScore)
	}
	if o.TotalQuestions != 15 || o.TotalCorrect != 12 {
		t.Errorf("expected 15 questions / 12 correct, got %d / %d", o.TotalQuestions, o.TotalCorrect)
	}
	if o.Accuracy != 80 { // 12/15
		t.Errorf("expected accuracy 80, got %d", o.Accuracy)
	}

	if len(result.QuizStats) != 2 {
		t.Fatalf("expected 2 quiz stats, got %d", len(result.QuizStats))
	}
	js := result.QuizStats[0]
	if js.QuizID != 1 || js.Attempts != 2 || js.BestScore != 100 || js.AverageScore != 90 {
		t.Errorf("unexpected first quiz stat: %+v", js)
	}
	goStat := result.QuizStats[1]
	if goStat.QuizID != 2 || goStat.Attempts != 1 || goStat.BestScore != 60 {
		t.Errorf("unexpected second quiz stat: %+v", goStat)
	}
}

func TestBuildOverviewRecentAttemptsTail(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	var attempts []model.UserQuizAttempt
	for i := 0; i < 13; i++ {
		attempts = append(attempts, attemptAt(1, "Go Basics", i, 5, 0, base.Add(time.Duration(i)*time.Hour)))
	}

	result := buildOverview(attempts)
	if len(result.RecentAttempts) != 10 {
		t.Fatalf("expected 10 recent attempts, got %d", len(result.RecentAttempts))
	}
	// The tail keeps chronological order: scores 3..12.
	if result.RecentAttempts[0].Score != 3 || result.RecentAttempts[9].Score != 12 {
		t.Errorf("expected tail scores 3..12, got %d..%d",
			result.RecentAttempts[0].Score, result.RecentAttempts[9].Score)
	}
}

func TestBuildGraphSameDayMerge(t *testing.T) {
	attempts := []model.UserQuizAttempt{
		attemptAt(1, "Go Basics", 80, 5, 4, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		attemptAt(1, "Go Basics", 100, 5, 5, time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)),
		attemptAt(1, "Go Basics", 40, 5, 2, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)),
	}

	points := buildGraph(attempts)
	if len(points) != 2 {
		t.Fatalf("expected 2 graph points, got %d", len(points))
	}
	if points[0].Date != "2025-03-01" || points[0].AverageScore != 90 || points[0].Attempts != 2 {
		t.Errorf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2025-03-02" || points[1].AverageScore != 40 || points[1].Attempts != 1 {
		t.Errorf("unexpected second point: %+v", points[1])
	}
}

func TestBuildGraphUsesUTCDay(t *testing.T) {
	// 23:30 in UTC-3 is 02:30 next day in UTC; grouping is on the UTC day.
	loc := time.FixedZone("UTC-3", -3*60*60)
	attempts := []model.UserQuizAttempt{
		attemptAt(1, "Go Basics", 50, 5, 2, time.Date(2025, 3, 1, 23, 30, 0, 0, loc)),
	}

	points := buildGraph(attempts)
	if len(points) != 1 || points[0].Date != "2025-03-02" {
		t.Errorf("expected UTC day 2025-03-02, got %+v", points)
	}
}

func TestBuildSubjectsAccuracy(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	attempts := []model.UserQuizAttempt{
		attemptAt(1, "Go Basics", 100, 5, 5, base),
		attemptAt(2, "JavaScript Fundamentals", 60, 5, 3, base.Add(time.Hour)),
		attemptAt(1, "Go Basics", 80, 5, 4, base.Add(2*time.Hour)),
	}

	subjects := buildSubjects(attempts)
	if len(subjects) != 2 {
		t.Fatalf("expected 2 subjects, got %d", len(subjects))
	}
	goSubject := subjects[0]
	if goSubject.Subject != "Go Basics" || goSubject.TotalAttempts != 2 {
		t.Fatalf("unexpected first subject: %+v", goSubject)
	}
	if goSubject.Accuracy != 90 { // 9/10
		t.Errorf("expected accuracy 90, got %d", goSubject.Accuracy)
	}
	if goSubject.AverageScore != 90 || goSubject.BestScore != 100 {
		t.Errorf("unexpected aggregates: %+v", goSubject)
	}
}

func TestGetPerformanceGraphDefaultPeriod(t *testing.T) {
	repo := &fakeAttemptRepo{}
	svc := NewAnalyticsService(repo)

	if _, err := svc.GetPerformanceGraph(1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.sinceCalls != 1 {
		t.Fatalf("expected one windowed fetch, got %d", repo.sinceCalls)
	}
	want := time.Now().AddDate(0, 0, -defaultGraphPeriodDays)
	if diff := want.Sub(repo.lastSince); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expected since ~30 days back, got %v", repo.lastSince)
	}
}
