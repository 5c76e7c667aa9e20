package dto

import (
	"github.com/finbot/backend/internal/application/usecase/report"
	"github.com/finbot/backend/internal/domain/entity"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportResponse represents a generated report: one recomputed aggregate
// paired with narrative content.
type ReportResponse struct {
	Type      string                `json:"type"`
	Period    string                `json:"period"`
	FromCache bool                  `json:"from_cache"`
	RuleBased bool                  `json:"rule_based"`
	Content   ReportContentResponse `json:"content"`

	IncomeStatement *IncomeStatementResponse `json:"income_statement,omitempty"`
	BalanceSheet    *BalanceSheetResponse    `json:"balance_sheet,omitempty"`
	CashFlow        *CashFlowResponse        `json:"cash_flow,omitempty"`
	Summary         *SummaryResponse         `json:"summary,omitempty"`
}

// ReportContentResponse represents the narrative half of a report.
type ReportContentResponse struct {
	Title           string                  `json:"title"`
	Summary         string                  `json:"summary"`
	Sections        []ReportSectionResponse `json:"sections"`
	Recommendations []string                `json:"recommendations,omitempty"`
}

// ReportSectionResponse represents one titled narrative block.
type ReportSectionResponse struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// ToReportResponse converts a GenerateReportOutput to its DTO.
func ToReportResponse(output *report.GenerateReportOutput) ReportResponse {
	rpt := output.Report

	sections := make([]ReportSectionResponse, len(rpt.Content.Sections))
	for i, section := range rpt.Content.Sections {
		sections[i] = ReportSectionResponse{
			Heading: section.Heading,
			Content: section.Content,
		}
	}

	response := ReportResponse{
		Type:      string(rpt.Type),
		Period:    rpt.Period,
		FromCache: output.FromCache,
		RuleBased: output.RuleBased,
		Content: ReportContentResponse{
			Title:           rpt.Content.Title,
			Summary:         rpt.Content.Summary,
			Sections:        sections,
			Recommendations: rpt.Content.Recommendations,
		},
	}

	if rpt.IncomeStatement != nil {
		stmt := ToIncomeStatementResponse(rpt.IncomeStatement)
		response.IncomeStatement = &stmt
	}
	if rpt.BalanceSheet != nil {
		sheet := ToBalanceSheetResponse(rpt.BalanceSheet)
		response.BalanceSheet = &sheet
	}
	if rpt.CashFlow != nil {
		flow := ToCashFlowResponse(rpt.CashFlow)
		response.CashFlow = &flow
	}
	if rpt.Summary != nil {
		summary := ToSummaryResponse(rpt.Summary)
		response.Summary = &summary
	}

	return response
}

// InsightsResponse represents the generated insights block.
type InsightsResponse struct {
	KeyInsights     []string `json:"key_insights"`
	Trends          []string `json:"trends"`
	Recommendations []string `json:"recommendations"`
	Risks           []string `json:"risks"`
	RuleBased       bool     `json:"rule_based"`
}

// ToInsightsResponse converts an Insights entity to its DTO.
func ToInsightsResponse(insights *entity.Insights, ruleBased bool) InsightsResponse {
	return InsightsResponse{
		KeyInsights:     insights.KeyInsights,
		Trends:          insights.Trends,
		Recommendations: insights.Recommendations,
		Risks:           insights.Risks,
		RuleBased:       ruleBased,
	}
}
