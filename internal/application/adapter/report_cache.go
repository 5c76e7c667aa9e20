package adapter

import (
	"context"

	"github.com/finbot/backend/internal/domain/entity"
)

// ReportCache stores generated reports keyed by dataset, report type, and
// date range. Cache failures are treated as misses by callers; the cache is
// never the source of truth.
type ReportCache interface {
	// Get returns the cached report for the key, with found=false on a miss.
	Get(ctx context.Context, key string) (report *entity.Report, found bool, err error)

	// Set stores a report under the key.
	Set(ctx context.Context, key string, report *entity.Report) error
}

// ChatHistoryRepository keeps the ordered per-session chat history.
type ChatHistoryRepository interface {
	// Append adds a message to the end of the session's history.
	Append(ctx context.Context, sessionID string, message entity.ChatMessage) error

	// List returns the session's history in insertion order.
	List(ctx context.Context, sessionID string) ([]entity.ChatMessage, error)
}
