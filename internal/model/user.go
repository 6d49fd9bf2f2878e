package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	Password     *string        `json:"-"` // bcrypt hash; nil for OAuth-only accounts
	GoogleID     *string        `json:"-" gorm:"uniqueIndex"`
	Name         string         `json:"name" gorm:"not null"`
	ProfileImage *string        `json:"profile_image,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
