package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// chatHistory implements the adapter.ChatHistoryRepository interface on a
// Redis list per session, trimmed to a bounded length.
type chatHistory struct {
	client     *redis.Client
	ttl        time.Duration
	maxEntries int64
}

// NewChatHistory creates a new Redis chat history instance.
func NewChatHistory(client *redis.Client, ttl time.Duration, maxEntries int64) adapter.ChatHistoryRepository {
	return &chatHistory{
		client:     client,
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func historyKey(sessionID string) string {
	return "chat_history:" + sessionID
}

// Append adds a message to the end of the session's history.
func (h *chatHistory) Append(ctx context.Context, sessionID string, message entity.ChatMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode chat message: %w", err)
	}

	key := historyKey(sessionID)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -h.maxEntries, -1)
	pipe.Expire(ctx, key, h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append chat history: %w", err)
	}
	return nil
}

// List returns the session's history in insertion order.
func (h *chatHistory) List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error) {
	entries, err := h.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat history: %w", err)
	}

	messages := make([]entity.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg entity.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
