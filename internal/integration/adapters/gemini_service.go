// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/finbot/backend/internal/application/format"
	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
)

// GeminiService implements the NarrativeService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Chat answers a free-text question grounded in the composite summary.
func (s *GeminiService) Chat(ctx context.Context, prompt string, summary *entity.CompositeSummary, history []entity.ChatMessage) (string, error) {
	if !s.IsAvailable() {
		return "", s.unavailableError()
	}
	if summary == nil {
		return "", failedError("no financial data to chat about", nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", failedError("failed to create gemini client", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildChatPrompt(prompt, summary, history)))
	if err != nil {
		return "", failedError("failed to generate content", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", failedError("empty response from gemini", nil)
	}
	return text, nil
}

// GenerateReportContent produces the narrative half of a report.
func (s *GeminiService) GenerateReportContent(ctx context.Context, reportType entity.ReportType, summary *entity.CompositeSummary) (*entity.ReportContent, error) {
	if !s.IsAvailable() {
		return nil, s.unavailableError()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, failedError("failed to create gemini client", err)
	}
	defer client.Close()

	// Configure model for JSON output
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildReportPrompt(reportType, summary)))
	if err != nil {
		return nil, failedError("failed to generate content", err)
	}

	content, err := parseReportContent(responseText(resp))
	if err != nil {
		return nil, failedError("failed to parse response", err)
	}
	return content, nil
}

// AnalyzeInsights produces the insights block for a summary.
func (s *GeminiService) AnalyzeInsights(ctx context.Context, summary *entity.CompositeSummary) (*entity.Insights, error) {
	if !s.IsAvailable() {
		return nil, s.unavailableError()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, failedError("failed to create gemini client", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := fmt.Sprintf(`Financial Data:
%s

Analyze this financial data and provide:
1. 3-5 key insights
2. 2-3 observable trends
3. 3 actionable recommendations
4. 2-3 potential financial risks

Format the response as JSON with these exact keys: key_insights, trends, recommendations, risks.
Each key should contain an array of strings.`, financialContext(summary))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, failedError("failed to generate content", err)
	}

	insights, err := parseInsights(responseText(resp))
	if err != nil {
		return nil, failedError("failed to parse response", err)
	}
	return insights, nil
}

// unavailableError reports a call against an unconfigured service.
func (s *GeminiService) unavailableError() *domainerror.ReportError {
	return domainerror.NewReportError(
		domainerror.ErrCodeNarrativeUnavailable,
		"narrative service is not configured",
		domainerror.ErrNarrativeUnavailable,
	)
}

// failedError reports a failed call to a configured service.
func failedError(message string, err error) *domainerror.ReportError {
	return domainerror.NewReportError(domainerror.ErrCodeNarrativeFailed, message, err)
}

// buildChatPrompt creates the grounded analysis prompt for a chat question.
func (s *GeminiService) buildChatPrompt(prompt string, summary *entity.CompositeSummary, history []entity.ChatMessage) string {
	var sb strings.Builder

	sb.WriteString(`You are a financial analyst assistant analyzing real financial data. Your primary role is to analyze the user's financial data and provide specific data-driven insights and answers.

IMPORTANT GUIDELINES:
1. ONLY analyze the provided financial dataset. DO NOT fabricate data or make generic recommendations.
2. All responses MUST directly reference numbers from the provided financial data.
3. Always include specific figures, percentages, and calculations in your responses.
4. Format currency values with dollar signs and commas (e.g., $1,234.56).
5. When discussing trends, cite specific periods and percentage changes.
6. If asked about future predictions, base them ONLY on historical patterns in the provided data.
7. If data is insufficient to answer a specific question, clearly state this limitation.
8. If the question isn't about the financial data, gently redirect to financial analysis topics.
9. Always offer 1-2 actionable insights based on the data.

`)

	sb.WriteString("FINANCIAL DATA:\n")
	sb.WriteString(financialContext(summary))

	if len(history) > 0 {
		sb.WriteString("\nCONVERSATION SO FAR:\n")
		for _, msg := range history {
			sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
		}
	}

	sb.WriteString("\nUSER QUESTION: ")
	sb.WriteString(prompt)
	sb.WriteString("\n\nYour analysis (be concise, specific, and data-driven):\n")

	return sb.String()
}

// buildReportPrompt creates the per-type report generation prompt.
func (s *GeminiService) buildReportPrompt(reportType entity.ReportType, summary *entity.CompositeSummary) string {
	var focus string
	switch reportType {
	case entity.ReportIncomeStatement:
		focus = `Generate a comprehensive income statement analysis based on this financial data.
Focus on revenue sources, major expense categories, and profitability.
Include a narrative analysis explaining the key factors affecting the company's performance.`
	case entity.ReportBalanceSheet:
		focus = `Generate a comprehensive balance sheet analysis based on this financial data.
Focus on assets, liabilities, and equity positions.
Include a narrative analysis explaining the key factors affecting the company's financial position.`
	case entity.ReportCashFlow:
		focus = `Generate a comprehensive cash flow analysis based on this financial data.
Focus on operating cash flow, investing activities, and financing activities.
Include a narrative analysis explaining the key factors affecting the company's cash position.`
	default:
		focus = `Generate a comprehensive financial summary based on this data.
Provide an overview of income, expenses, assets, liabilities, and financial health.
Include a narrative analysis explaining the key factors affecting the overall financial situation.`
	}

	return fmt.Sprintf(`Financial Data:
%s

%s

Format the response as JSON with these keys:
1. title (string)
2. summary (string) - A brief executive summary
3. sections (array of objects with "heading" and "content" string fields) - Each analyzing a different aspect
4. recommendations (array of strings) - Actionable insights based on the data`,
		financialContext(summary), focus)
}

// financialContext renders the composite summary as the plain-text context
// block every prompt is grounded in.
func financialContext(summary *entity.CompositeSummary) string {
	totalIncome := summary.IncomeTotal
	totalExpense := summary.ExpenseTotal
	netIncome := totalIncome.Sub(totalExpense)
	margin := 0.0
	if totalIncome.Sign() > 0 {
		margin = netIncome.InexactFloat64() / totalIncome.InexactFloat64() * 100
	}

	var sb strings.Builder
	sb.WriteString("FINANCIAL SUMMARY:\n")
	fmt.Fprintf(&sb, "Total Income: %s\n", format.Currency(totalIncome))
	fmt.Fprintf(&sb, "Total Expenses: %s\n", format.Currency(totalExpense))
	fmt.Fprintf(&sb, "Net Income: %s\n", format.Currency(netIncome))
	fmt.Fprintf(&sb, "Profit Margin: %s\n", format.Percent(margin))

	writeBreakdown(&sb, "INCOME CATEGORIES", summary.IncomeCategories)
	writeBreakdown(&sb, "EXPENSE CATEGORIES", summary.ExpenseCategories)
	writeBreakdown(&sb, "ASSETS", summary.Assets)
	writeBreakdown(&sb, "LIABILITIES", summary.Liabilities)

	if len(summary.TimePeriods) > 0 {
		sb.WriteString("\nTIME PERIOD ANALYSIS:\n")
		for _, bucket := range summary.TimePeriods {
			fmt.Fprintf(&sb, "- %s: Income: %s, Expenses: %s, Net: %s\n",
				bucket.Period, format.Currency(bucket.Income), format.Currency(bucket.Expense), format.Currency(bucket.Net))
		}
	}

	if summary.FinancialRatios != nil {
		r := summary.FinancialRatios
		sb.WriteString("\nFINANCIAL RATIOS:\n")
		fmt.Fprintf(&sb, "- profit_margin: %.4f\n", r.ProfitMargin)
		fmt.Fprintf(&sb, "- return_on_assets: %.4f\n", r.ReturnOnAssets)
		fmt.Fprintf(&sb, "- return_on_equity: %.4f\n", r.ReturnOnEquity)
		fmt.Fprintf(&sb, "- debt_to_equity: %.4f\n", r.DebtToEquity)
		fmt.Fprintf(&sb, "- asset_to_liability: %.4f\n", r.AssetToLiability)
	}

	return sb.String()
}

func writeBreakdown(sb *strings.Builder, heading string, categories map[string]decimal.Decimal) {
	if len(categories) == 0 {
		return
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(sb, "\n%s:\n", heading)
	for _, name := range names {
		fmt.Fprintf(sb, "- %s: %s\n", name, format.Currency(categories[name]))
	}
}

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}

// extractJSON strips markdown code fences the model sometimes wraps JSON in.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.Index(content, "```json"); idx >= 0 {
		content = content[idx+len("```json"):]
	} else {
		content = strings.TrimPrefix(content, "```")
	}
	if idx := strings.Index(content, "```"); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}

// geminiReportContent is the raw report content response from Gemini.
type geminiReportContent struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Sections []struct {
		Heading string `json:"heading"`
		Content string `json:"content"`
	} `json:"sections"`
	Recommendations []string `json:"recommendations"`
}

func parseReportContent(textContent string) (*entity.ReportContent, error) {
	if textContent == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var raw geminiReportContent
	if err := json.Unmarshal([]byte(extractJSON(textContent)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if raw.Title == "" && raw.Summary == "" && len(raw.Sections) == 0 {
		return nil, fmt.Errorf("response carried no report content")
	}

	content := &entity.ReportContent{
		Title:           raw.Title,
		Summary:         raw.Summary,
		Recommendations: raw.Recommendations,
	}
	for _, section := range raw.Sections {
		content.Sections = append(content.Sections, entity.ReportSection{
			Heading: section.Heading,
			Content: section.Content,
		})
	}
	return content, nil
}

// geminiInsights is the raw insights response from Gemini.
type geminiInsights struct {
	KeyInsights     []string `json:"key_insights"`
	Trends          []string `json:"trends"`
	Recommendations []string `json:"recommendations"`
	Risks           []string `json:"risks"`
}

func parseInsights(textContent string) (*entity.Insights, error) {
	if textContent == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var raw geminiInsights
	if err := json.Unmarshal([]byte(extractJSON(textContent)), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if len(raw.KeyInsights) == 0 && len(raw.Trends) == 0 && len(raw.Recommendations) == 0 && len(raw.Risks) == 0 {
		return nil, fmt.Errorf("response carried no insights")
	}

	return &entity.Insights{
		KeyInsights:     raw.KeyInsights,
		Trends:          raw.Trends,
		Recommendations: raw.Recommendations,
		Risks:           raw.Risks,
	}, nil
}
