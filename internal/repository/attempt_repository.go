package repository

import (
	"time"

	"github.com/datlq-dev/quizhub/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.UserQuizAttempt) error
	FindByIDAndUser(id, userID uint) (*model.UserQuizAttempt, error)
	FindAllByUser(userID uint) ([]model.UserQuizAttempt, error)
	FindAllByUserChronological(userID uint) ([]model.UserQuizAttempt, error)
	FindByUserSince(userID uint, since time.Time) ([]model.UserQuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.UserQuizAttempt) error {
	// The associated UserAnswers are inserted with the attempt in a single
	// transaction, so no partial attempt is ever visible.
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByIDAndUser(id, userID uint) (*model.UserQuizAttempt, error) {
	var attempt model.UserQuizAttempt
	err := r.db.
		Preload("Quiz").
		Preload("UserAnswers.Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// FindAllByUser returns a user's attempts, most recent first, for history views.
func (r *attemptRepository) FindAllByUser(userID uint) ([]model.UserQuizAttempt, error) {
	var attempts []model.UserQuizAttempt
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// FindAllByUserChronological returns attempts oldest first, the order the
// analytics aggregations are defined over.
func (r *attemptRepository) FindAllByUserChronological(userID uint) ([]model.UserQuizAttempt, error) {
	var attempts []model.UserQuizAttempt
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("completed_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindByUserSince(userID uint, since time.Time) ([]model.UserQuizAttempt, error) {
	var attempts []model.UserQuizAttempt
	err := r.db.
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at ASC").
		Find(&attempts).Error
	return attempts, err
}
