package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/application/usecase/summary"
	"github.com/finbot/backend/internal/domain/entity"
)

// ChatInput represents the input for answering a chat message.
type ChatInput struct {
	DatasetID uuid.UUID
	Message   string
}

// ChatOutput represents the output of answering a chat message.
type ChatOutput struct {
	Reply string `json:"reply"`
	// RuleBased is true when the deterministic responder produced the reply,
	// either because the narrative service is unavailable or because it failed.
	RuleBased bool `json:"rule_based"`
	// History is the session's conversation up to and including this turn,
	// oldest first.
	History []entity.ChatMessage `json:"history"`
}

// ChatUseCase answers free-text questions about a dataset. It prefers the
// narrative service and falls back to the deterministic responder on any
// failure, so a reply is always produced for a valid dataset.
type ChatUseCase struct {
	datasetRepo adapter.DatasetRepository
	narrative   adapter.NarrativeService
	history     adapter.ChatHistoryRepository
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(
	datasetRepo adapter.DatasetRepository,
	narrative adapter.NarrativeService,
	history adapter.ChatHistoryRepository,
) *ChatUseCase {
	return &ChatUseCase{
		datasetRepo: datasetRepo,
		narrative:   narrative,
		history:     history,
	}
}

// Execute answers the question against the dataset's composite summary.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	sessionID := input.DatasetID.String()
	past := uc.loadHistory(ctx, sessionID)

	composite := summary.Summarize(ds)

	reply, ruleBased := uc.answer(ctx, input.Message, composite, past)

	userTurn := entity.ChatMessage{
		Role:      entity.ChatRoleUser,
		Content:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	assistantTurn := entity.ChatMessage{
		Role:      entity.ChatRoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	uc.appendHistory(ctx, sessionID, userTurn)
	uc.appendHistory(ctx, sessionID, assistantTurn)

	history := make([]entity.ChatMessage, 0, len(past)+2)
	history = append(history, past...)
	history = append(history, userTurn, assistantTurn)

	return &ChatOutput{Reply: reply, RuleBased: ruleBased, History: history}, nil
}

func (uc *ChatUseCase) answer(
	ctx context.Context,
	message string,
	composite *entity.CompositeSummary,
	past []entity.ChatMessage,
) (string, bool) {
	if uc.narrative != nil && uc.narrative.IsAvailable() {
		reply, err := uc.narrative.Chat(ctx, message, composite, past)
		if err == nil && reply != "" {
			return reply, false
		}
		if err != nil {
			slog.Warn("Narrative chat failed, using rule-based reply", "error", err)
		}
	}
	return RuleBasedReply(message, composite), true
}

// History failures never fail the chat itself.
func (uc *ChatUseCase) loadHistory(ctx context.Context, sessionID string) []entity.ChatMessage {
	if uc.history == nil {
		return nil
	}
	past, err := uc.history.List(ctx, sessionID)
	if err != nil {
		slog.Warn("Failed to load chat history", "sessionID", sessionID, "error", err)
		return nil
	}
	return past
}

func (uc *ChatUseCase) appendHistory(ctx context.Context, sessionID string, msg entity.ChatMessage) {
	if uc.history == nil {
		return
	}
	if err := uc.history.Append(ctx, sessionID, msg); err != nil {
		slog.Warn("Failed to append chat history", "sessionID", sessionID, "error", err)
	}
}
