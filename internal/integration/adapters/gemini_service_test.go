package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"title":"x"}`, `{"title":"x"}`},
		{"json fence", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"anonymous fence", "```\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"leading prose before fence", "Here is the report:\n```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"surrounding whitespace", "  \n{\"title\":\"x\"}\n  ", `{"title":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.input); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseReportContent(t *testing.T) {
	content, err := parseReportContent("```json\n" + `{
		"title": "Income Statement Analysis",
		"summary": "Revenue exceeded expenses.",
		"sections": [
			{"heading": "Revenue", "content": "Strong sales."},
			{"heading": "Expenses", "content": "Rent dominates."}
		],
		"recommendations": ["Cut rent"]
	}` + "\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if content.Title != "Income Statement Analysis" {
		t.Errorf("title = %q", content.Title)
	}
	if len(content.Sections) != 2 || content.Sections[1].Heading != "Expenses" {
		t.Errorf("sections = %+v", content.Sections)
	}
	if len(content.Recommendations) != 1 || content.Recommendations[0] != "Cut rent" {
		t.Errorf("recommendations = %v", content.Recommendations)
	}
}

func TestParseReportContentErrors(t *testing.T) {
	if _, err := parseReportContent(""); err == nil {
		t.Error("expected an error for an empty response")
	}
	if _, err := parseReportContent("not json at all"); err == nil || !strings.Contains(err.Error(), "parse JSON") {
		t.Errorf("expected a parse error, got %v", err)
	}
	if _, err := parseReportContent("{}"); err == nil {
		t.Error("expected an error for a response with no report content")
	}
}

func TestParseInsights(t *testing.T) {
	insights, err := parseInsights(`{
		"key_insights": ["Net income is positive"],
		"trends": ["Income is rising"],
		"recommendations": ["Diversify income"],
		"risks": ["Single income source"]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(insights.KeyInsights) != 1 || insights.KeyInsights[0] != "Net income is positive" {
		t.Errorf("key insights = %v", insights.KeyInsights)
	}
	if len(insights.Risks) != 1 {
		t.Errorf("risks = %v", insights.Risks)
	}
}

func TestParseInsightsErrors(t *testing.T) {
	if _, err := parseInsights(""); err == nil {
		t.Error("expected an error for an empty response")
	}
	if _, err := parseInsights("{}"); err == nil {
		t.Error("expected an error for a response with no insights")
	}
}

func TestGeminiServiceAvailability(t *testing.T) {
	if NewGeminiService("").IsAvailable() {
		t.Error("service without an API key should report unavailable")
	}
	if !NewGeminiService("test-key").IsAvailable() {
		t.Error("service with an API key should report available")
	}
}

func TestUnconfiguredServiceReturnsNarrativeUnavailable(t *testing.T) {
	service := NewGeminiService("")
	ctx := context.Background()
	summary := &entity.CompositeSummary{}

	_, chatErr := service.Chat(ctx, "hello", summary, nil)
	_, reportErr := service.GenerateReportContent(ctx, entity.ReportIncomeStatement, summary)
	_, insightsErr := service.AnalyzeInsights(ctx, summary)

	for name, err := range map[string]error{
		"Chat":                  chatErr,
		"GenerateReportContent": reportErr,
		"AnalyzeInsights":       insightsErr,
	} {
		var reportError *domainerror.ReportError
		if !errors.As(err, &reportError) {
			t.Errorf("%s: expected ReportError, got %v", name, err)
			continue
		}
		if reportError.Code != domainerror.ErrCodeNarrativeUnavailable {
			t.Errorf("%s: code = %s, want %s", name, reportError.Code, domainerror.ErrCodeNarrativeUnavailable)
		}
		if !errors.Is(err, domainerror.ErrNarrativeUnavailable) {
			t.Errorf("%s: expected error to wrap ErrNarrativeUnavailable, got %v", name, err)
		}
	}
}

func TestChatWithoutSummaryReturnsNarrativeFailed(t *testing.T) {
	_, err := NewGeminiService("test-key").Chat(context.Background(), "hello", nil, nil)

	var reportError *domainerror.ReportError
	if !errors.As(err, &reportError) {
		t.Fatalf("expected ReportError, got %v", err)
	}
	if reportError.Code != domainerror.ErrCodeNarrativeFailed {
		t.Errorf("code = %s, want %s", reportError.Code, domainerror.ErrCodeNarrativeFailed)
	}
}
