package adapter

import (
	"context"

	"github.com/finbot/backend/internal/domain/entity"
)

// NarrativeService is the external, non-deterministic collaborator that
// turns aggregates into freeform prose. Implementations must be
// substitutable; every caller keeps a deterministic fallback and treats the
// narrative as decorative, never authoritative.
type NarrativeService interface {
	// IsAvailable checks whether the service is configured and reachable
	// enough to attempt a call.
	IsAvailable() bool

	// Chat answers a free-text question about the summarized financial data.
	Chat(ctx context.Context, prompt string, summary *entity.CompositeSummary, history []entity.ChatMessage) (string, error)

	// GenerateReportContent produces narrative content for one report type.
	GenerateReportContent(ctx context.Context, reportType entity.ReportType, summary *entity.CompositeSummary) (*entity.ReportContent, error)

	// AnalyzeInsights produces the insights block for a summary.
	AnalyzeInsights(ctx context.Context, summary *entity.CompositeSummary) (*entity.Insights, error)
}
