package mock

import (
	"context"
	"errors"

	"github.com/finbot/backend/internal/domain/entity"
)

// NarrativeService is a controllable stand-in for the external narrative
// collaborator. With Available false every surface must fall back to its
// deterministic generator.
type NarrativeService struct {
	Available  bool
	ChatReply  string
	Content    *entity.ReportContent
	InsightSet *entity.Insights
	Err        error
}

// NewUnavailableNarrative returns a service that reports unavailable, which
// is the default posture for integration scenarios.
func NewUnavailableNarrative() *NarrativeService {
	return &NarrativeService{}
}

func (m *NarrativeService) IsAvailable() bool {
	return m.Available
}

func (m *NarrativeService) Chat(_ context.Context, _ string, _ *entity.CompositeSummary, _ []entity.ChatMessage) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.ChatReply == "" {
		return "", errors.New("no chat reply configured")
	}
	return m.ChatReply, nil
}

func (m *NarrativeService) GenerateReportContent(_ context.Context, _ entity.ReportType, _ *entity.CompositeSummary) (*entity.ReportContent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Content == nil {
		return nil, errors.New("no report content configured")
	}
	return m.Content, nil
}

func (m *NarrativeService) AnalyzeInsights(_ context.Context, _ *entity.CompositeSummary) (*entity.Insights, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.InsightSet == nil {
		return nil, errors.New("no insights configured")
	}
	return m.InsightSet, nil
}
