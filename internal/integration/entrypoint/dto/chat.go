package dto

import (
	"time"

	"github.com/finbot/backend/internal/application/usecase/chat"
	"github.com/finbot/backend/internal/domain/entity"
)

// ChatRequest represents the request body for a chat message.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse represents a single turn in the chat history.
type ChatMessageResponse struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ChatResponse represents the reply to a chat message.
type ChatResponse struct {
	Reply     string                `json:"reply"`
	RuleBased bool                  `json:"rule_based"`
	History   []ChatMessageResponse `json:"history"`
}

// ToChatResponse converts a ChatOutput to its DTO.
func ToChatResponse(output *chat.ChatOutput) ChatResponse {
	history := make([]ChatMessageResponse, 0, len(output.History))
	for _, msg := range output.History {
		history = append(history, toChatMessageResponse(msg))
	}
	return ChatResponse{
		Reply:     output.Reply,
		RuleBased: output.RuleBased,
		History:   history,
	}
}

func toChatMessageResponse(msg entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	}
}
