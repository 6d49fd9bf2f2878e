package repository

import (
	"github.com/datlq-dev/quizhub/internal/model"
	"gorm.io/gorm"
)

type ConversationRepository interface {
	Create(conversation *model.Conversation) error
	FindByIDAndUser(id, userID uint) (*model.Conversation, error)
	FindByIDAndUserWithMessages(id, userID uint) (*model.Conversation, error)
	FindAllByUser(userID uint) ([]model.Conversation, error)
	Touch(id uint) error
	Delete(id uint) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(conversation *model.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *conversationRepository) FindByIDAndUser(id, userID uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByIDAndUserWithMessages(id, userID uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// FindAllByUser returns conversations most recently updated first, with
// messages newest first so callers can surface the latest message.
func (r *conversationRepository) FindAllByUser(userID uint) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at DESC")
		}).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

// Touch bumps a conversation's updated_at after a new message.
func (r *conversationRepository) Touch(id uint) error {
	return r.db.Model(&model.Conversation{}).Where("id = ?", id).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

func (r *conversationRepository) Delete(id uint) error {
	return r.db.Delete(&model.Conversation{}, id).Error
}
