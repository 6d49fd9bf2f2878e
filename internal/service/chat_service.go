package service

import (
	"fmt"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/model"
	"github.com/datlq-dev/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultConversationTitle = "New Conversation"

type ChatService interface {
	GetConversations(userID uint) ([]dto.ConversationDTO, error)
	GetConversation(conversationID, userID uint) (*dto.ConversationDTO, error)
	CreateConversation(userID uint, req dto.ConversationCreateDTO) (*dto.ConversationDTO, error)
	SendMessage(userID uint, req dto.SendMessageDTO) ([]dto.MessageDTO, error)
	DeleteConversation(conversationID, userID uint) error
}

type chatService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
}

func NewChatService(conversationRepo repository.ConversationRepository, messageRepo repository.MessageRepository) ChatService {
	return &chatService{conversationRepo: conversationRepo, messageRepo: messageRepo}
}

func (s *chatService) GetConversations(userID uint) ([]dto.ConversationDTO, error) {
	conversations, err := s.conversationRepo.FindAllByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetConversations: repository error")
		return nil, fmt.Errorf("fetching conversations: %w", err)
	}

	result := make([]dto.ConversationDTO, 0, len(conversations))
	for _, c := range conversations {
		item := dto.ConversationDTO{
			ID:        c.ID,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
		// Messages are preloaded newest first; surface only the latest.
		if len(c.Messages) > 0 {
			last := messageToDTO(&c.Messages[0])
			item.LastMessage = &last
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *chatService) GetConversation(conversationID, userID uint) (*dto.ConversationDTO, error) {
	conversation, err := s.conversationRepo.FindByIDAndUserWithMessages(conversationID, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %d: %w", conversationID, ErrNotFound)
		}
		log.Error().Err(err).Uint("conversationID", conversationID).Msg("GetConversation: repository error")
		return nil, fmt.Errorf("fetching conversation: %w", err)
	}

	resp := dto.ConversationDTO{
		ID:        conversation.ID,
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
		Messages:  make([]dto.MessageDTO, 0, len(conversation.Messages)),
	}
	for i := range conversation.Messages {
		resp.Messages = append(resp.Messages, messageToDTO(&conversation.Messages[i]))
	}
	return &resp, nil
}

func (s *chatService) CreateConversation(userID uint, req dto.ConversationCreateDTO) (*dto.ConversationDTO, error) {
	title := req.Title
	if title == "" {
		title = defaultConversationTitle
	}
	conversation := model.Conversation{UserID: userID, Title: title}
	if err := s.conversationRepo.Create(&conversation); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateConversation: repository error")
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return &dto.ConversationDTO{
		ID:        conversation.ID,
		Title:     conversation.Title,
		CreatedAt: conversation.CreatedAt,
		UpdatedAt: conversation.UpdatedAt,
	}, nil
}

// SendMessage stores the user's message and a canned assistant reply. There is
// no model call behind this: the reply is a placeholder by specification.
func (s *chatService) SendMessage(userID uint, req dto.SendMessageDTO) ([]dto.MessageDTO, error) {
	if _, err := s.conversationRepo.FindByIDAndUser(req.ConversationID, userID); err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("conversation %d: %w", req.ConversationID, ErrNotFound)
		}
		log.Error().Err(err).Uint("conversationID", req.ConversationID).Msg("SendMessage: repository error")
		return nil, fmt.Errorf("fetching conversation: %w", err)
	}

	userMessage := model.Message{
		ConversationID: req.ConversationID,
		Role:           model.MessageRoleUser,
		Content:        req.Content,
	}
	if err := s.messageRepo.Create(&userMessage); err != nil {
		log.Error().Err(err).Uint("conversationID", req.ConversationID).Msg("SendMessage: failed to store user message")
		return nil, fmt.Errorf("storing message: %w", err)
	}

	assistantMessage := model.Message{
		ConversationID: req.ConversationID,
		Role:           model.MessageRoleAssistant,
		Content:        fmt.Sprintf("This is a simulated response to: %q. In production, integrate with OpenAI or another AI service.", req.Content),
	}
	if err := s.messageRepo.Create(&assistantMessage); err != nil {
		log.Error().Err(err).Uint("conversationID", req.ConversationID).Msg("SendMessage: failed to store assistant message")
		return nil, fmt.Errorf("storing assistant message: %w", err)
	}

	if err := s.conversationRepo.Touch(req.ConversationID); err != nil {
		log.Warn().Err(err).Uint("conversationID", req.ConversationID).Msg("SendMessage: failed to bump conversation timestamp")
	}

	return []dto.MessageDTO{messageToDTO(&userMessage), messageToDTO(&assistantMessage)}, nil
}

func (s *chatService) DeleteConversation(conversationID, userID uint) error {
	if _, err := s.conversationRepo.FindByIDAndUser(conversationID, userID); err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("conversation %d: %w", conversationID, ErrNotFound)
		}
		log.Error().Err(err).Uint("conversationID", conversationID).Msg("DeleteConversation: repository error")
		return fmt.Errorf("fetching conversation: %w", err)
	}
	if err := s.conversationRepo.Delete(conversationID); err != nil {
		log.Error().Err(err).Uint("conversationID", conversationID).Msg("DeleteConversation: delete failed")
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return nil
}

func messageToDTO(m *model.Message) dto.MessageDTO {
	return dto.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Role:           m.Role,
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}
