package service

import (
	"fmt"
	"math"
	"time"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultGraphPeriodDays = 30

// AnalyticsService derives summary statistics from a user's attempt history.
// The three views are pure functions over the fetched attempt list.
type AnalyticsService interface {
	GetOverview(userID uint) (*dto.AnalyticsOverviewDTO, error)
	GetPerformanceGraph(userID uint, periodDays int) (*dto.PerformanceGraphDTO, error)
	GetSubjectBreakdown(userID uint) (*dto.SubjectBreakdownDTO, error)
}

type analyticsService struct {
	attemptRepo repository.AttemptRepository
}

func NewAnalyticsService(attemptRepo repository.AttemptRepository) AnalyticsService {
	return &analyticsService{attemptRepo: attemptRepo}
}

func (s *analyticsService) GetOverview(userID uint) (*dto.AnalyticsOverviewDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserChronological(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetOverview: repository error")
		return nil, fmt.Errorf("fetching attempts: %w", err)
	}
	result := buildOverview(attempts)
	return &result, nil
}

func (s *analyticsService) GetPerformanceGraph(userID uint, periodDays int) (*dto.PerformanceGraphDTO, error) {
	if periodDays <= 0 {
		periodDays = defaultGraphPeriodDays
	}
	since := time.Now().AddDate(0, 0, -periodDays)
	attempts, err := s.attemptRepo.FindByUserSince(userID, since)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetPerformanceGraph: repository error")
		return nil, fmt.Errorf("fetching attempts: %w", err)
	}
	return &dto.PerformanceGraphDTO{GraphData: buildGraph(attempts)}, nil
}

func (s *analyticsService) GetSubjectBreakdown(userID uint) (*dto.SubjectBreakdownDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserChronological(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetSubjectBreakdown: repository error")
		return nil, fmt.Errorf("fetching attempts: %w", err)
	}
	return &dto.SubjectBreakdownDTO{Subjects: buildSubjects(attempts)}, nil
}

// buildOverview computes totals, averages, the chronological tail of recent
// attempts, and the per-quiz breakdown. Attempts must be ordered oldest first.
func buildOverview(attempts []model.UserQuizAttempt) dto.AnalyticsOverviewDTO {
	result := dto.AnalyticsOverviewDTO{
		RecentAttempts: []dto.RecentAttemptDTO{},
		QuizStats:      []dto.QuizStatDTO{},
	}

	totalScore := 0
	for _, a := range attempts {
		totalScore += a.Score
		result.Overview.TotalQuestions += a.TotalQuestions
		result.Overview.TotalCorrect += a.CorrectAnswers
	}
	result.Overview.TotalAttempts = len(attempts)
	if len(attempts) > 0 {
		result.Overview.AverageScore = roundDiv(totalScore, len(attempts))
	}
	if result.Overview.TotalQuestions > 0 {
		result.Overview.Accuracy = roundPercent(result.Overview.TotalCorrect, result.Overview.TotalQuestions)
	}

	recent := attempts
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	for _, a := range recent {
		result.RecentAttempts = append(result.RecentAttempts, dto.RecentAttemptDTO{
			ID:          a.ID,
			QuizTitle:   a.Quiz.Title,
			Score:       a.Score,
			CompletedAt: a.CompletedAt,
		})
	}

	// Group by quiz ID; an explicit key slice keeps the output in first-seen
	// order instead of map iteration order.
	type quizAgg struct {
		title      string
		attempts   int
		totalScore int
		bestScore  int
	}
	byQuiz := make(map[uint]*quizAgg)
	var quizOrder []uint
	for _, a := range attempts {
		agg, ok := byQuiz[a.QuizID]
		if !ok {
			agg = &quizAgg{title: a.Quiz.Title}
			byQuiz[a.QuizID] = agg
			quizOrder = append(quizOrder, a.QuizID)
		}
		agg.attempts++
		agg.totalScore += a.Score
		if a.Score > agg.bestScore {
			agg.bestScore = a.Score
		}
	}
	for _, quizID := range quizOrder {
		agg := byQuiz[quizID]
		result.QuizStats = append(result.QuizStats, dto.QuizStatDTO{
			QuizID:       quizID,
			QuizTitle:    agg.title,
			Attempts:     agg.attempts,
			BestScore:    agg.bestScore,
			AverageScore: roundDiv(agg.totalScore, agg.attempts),
		})
	}
	return result
}

// buildGraph groups attempts by UTC calendar day. Attempts must be ordered
// oldest first; the rows come out in that same order.
func buildGraph(attempts []model.UserQuizAttempt) []dto.GraphPointDTO {
	type dayAgg struct {
		totalScore int
		attempts   int
	}
	byDay := make(map[string]*dayAgg)
	var dayOrder []string
	for _, a := range attempts {
		day := a.CompletedAt.UTC().Format("2006-01-02")
		agg, ok := byDay[day]
		if !ok {
			agg = &dayAgg{}
			byDay[day] = agg
			dayOrder = append(dayOrder, day)
		}
		agg.totalScore += a.Score
		agg.attempts++
	}

	points := make([]dto.GraphPointDTO, 0, len(dayOrder))
	for _, day := range dayOrder {
		agg := byDay[day]
		points = append(points, dto.GraphPointDTO{
			Date:         day,
			AverageScore: roundDiv(agg.totalScore, agg.attempts),
			Attempts:     agg.attempts,
		})
	}
	return points
}

// buildSubjects groups attempts by quiz title.
func buildSubjects(attempts []model.UserQuizAttempt) []dto.SubjectStatDTO {
	type subjectAgg struct {
		attempts       int
		totalQuestions int
		correctAnswers int
		totalScore     int
		bestScore      int
	}
	bySubject := make(map[string]*subjectAgg)
	var subjectOrder []string
	for _, a := range attempts {
		subject := a.Quiz.Title
		agg, ok := bySubject[subject]
		if !ok {
			agg = &subjectAgg{}
			bySubject[subject] = agg
			subjectOrder = append(subjectOrder, subject)
		}
		agg.attempts++
		agg.totalQuestions += a.TotalQuestions
		agg.correctAnswers += a.CorrectAnswers
		agg.totalScore += a.Score
		if a.Score > agg.bestScore {
			agg.bestScore = a.Score
		}
	}

	subjects := make([]dto.SubjectStatDTO, 0, len(subjectOrder))
	for _, subject := range subjectOrder {
		agg := bySubject[subject]
		stat := dto.SubjectStatDTO{
			Subject:       subject,
			TotalAttempts: agg.attempts,
			AverageScore:  roundDiv(agg.totalScore, agg.attempts),
			BestScore:     agg.bestScore,
		}
		if agg.totalQuestions > 0 {
			stat.Accuracy = roundPercent(agg.correctAnswers, agg.totalQuestions)
		}
		subjects = append(subjects, stat)
	}
	return subjects
}

func roundDiv(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
