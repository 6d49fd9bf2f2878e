package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

type Message struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ConversationID uint           `json:"conversation_id" gorm:"not null;index"`
	Role           string         `json:"role" gorm:"not null"` // "user" | "assistant"
	Content        string         `json:"content" gorm:"type:text;not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
