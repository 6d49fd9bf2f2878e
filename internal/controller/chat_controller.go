package controller

import (
	"errors"
	"net/http"

	"github.com/datlq-dev/quizhub/internal/dto"
	"github.com/datlq-dev/quizhub/internal/middleware"
	"github.com/datlq-dev/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{chatService: chatService}
}

// GetConversations godoc
// @Summary List the caller's conversations
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ConversationListResponseDTO
// @Router /api/chat/conversations [get]
func (c *ChatController) GetConversations(ctx *gin.Context) {
	conversations, err := c.chatService.GetConversations(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("GetConversations: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ConversationListResponseDTO{Conversations: conversations})
}

// GetConversation godoc
// @Summary Fetch one conversation with its messages
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {object} dto.ConversationResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/chat/conversations/{id} [get]
func (c *ChatController) GetConversation(ctx *gin.Context) {
	conversationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	conversation, err := c.chatService.GetConversation(conversationID, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Conversation not found"})
			return
		}
		log.Error().Err(err).Uint("conversationID", conversationID).Msg("GetConversation: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ConversationResponseDTO{Conversation: *conversation})
}

// CreateConversation godoc
// @Summary Create a conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ConversationCreateDTO true "Conversation data"
// @Success 201 {object} dto.ConversationResponseDTO
// @Router /api/chat/conversations [post]
func (c *ChatController) CreateConversation(ctx *gin.Context) {
	var req dto.ConversationCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	conversation, err := c.chatService.CreateConversation(middleware.UserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateConversation: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.ConversationResponseDTO{Conversation: *conversation})
}

// SendMessage godoc
// @Summary Send a message and receive the placeholder assistant reply
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SendMessageDTO true "Message data"
// @Success 200 {object} dto.SendMessageResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/chat/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	messages, err := c.chatService.SendMessage(middleware.UserID(ctx), req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Conversation not found"})
			return
		}
		log.Error().Err(err).Uint("conversationID", req.ConversationID).Msg("SendMessage: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.SendMessageResponseDTO{Messages: messages})
}

// DeleteConversation godoc
// @Summary Delete a conversation
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {object} dto.DeleteResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/chat/conversations/{id} [delete]
func (c *ChatController) DeleteConversation(ctx *gin.Context) {
	conversationID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.chatService.DeleteConversation(conversationID, middleware.UserID(ctx)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Conversation not found"})
			return
		}
		log.Error().Err(err).Uint("conversationID", conversationID).Msg("DeleteConversation: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteResponseDTO{Message: "Conversation deleted successfully"})
}
