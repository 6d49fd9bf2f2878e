package dto

import "time"

type ConversationCreateDTO struct {
	Title string `json:"title"`
}

type SendMessageDTO struct {
	ConversationID uint   `json:"conversationId" binding:"required"`
	Content        string `json:"content" binding:"required"`
}

type MessageDTO struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ConversationDTO struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	LastMessage *MessageDTO  `json:"lastMessage,omitempty"`
	Messages    []MessageDTO `json:"messages,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type ConversationListResponseDTO struct {
	Conversations []ConversationDTO `json:"conversations"`
}

type ConversationResponseDTO struct {
	Conversation ConversationDTO `json:"conversation"`
}

type SendMessageResponseDTO struct {
	Messages []MessageDTO `json:"messages"`
}

type DeleteResponseDTO struct {
	Message string `json:"message"`
}
