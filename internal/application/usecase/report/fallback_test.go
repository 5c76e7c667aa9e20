package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

func amounts(pairs ...any) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for i := 0; i < len(pairs); i += 2 {
		result[pairs[i].(string)] = decimal.NewFromInt(int64(pairs[i+1].(int)))
	}
	return result
}

func sampleSummary() *entity.CompositeSummary {
	return &entity.CompositeSummary{
		IncomeTotal:       decimal.NewFromInt(2500),
		ExpenseTotal:      decimal.NewFromInt(590),
		NetIncome:         decimal.NewFromInt(1910),
		IncomeCategories:  amounts("Salary", 1000, "Sale", 1500),
		ExpenseCategories: amounts("Rent", 250, "Utility", 340),
		Assets:            amounts("General Assets", 2500),
		Liabilities:       amounts("General Liabilities", 590),
	}
}

func TestFallbackIncomeStatementContent(t *testing.T) {
	content := FallbackReportContent(entity.ReportIncomeStatement, sampleSummary())

	if content.Title != "Income Statement Analysis" {
		t.Errorf("title = %q", content.Title)
	}
	want := "This income statement shows a total revenue of $2,500.00 and expenses of $590.00, resulting in a net income of $1,910.00."
	if content.Summary != want {
		t.Errorf("summary = %q, want %q", content.Summary, want)
	}
	if len(content.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(content.Sections))
	}
	// Categories ordered by amount descending.
	if got := content.Sections[0].Content; !strings.Contains(got, "Sale ($1,500.00), Salary ($1,000.00)") {
		t.Errorf("revenue breakdown = %q", got)
	}
	// Margin 76.4% is above the healthy threshold.
	if got := content.Sections[2].Content; !strings.Contains(got, "healthy margin") {
		t.Errorf("profitability assessment = %q", got)
	}
}

func TestFallbackIncomeStatementLowMargin(t *testing.T) {
	s := sampleSummary()
	s.IncomeTotal = decimal.NewFromInt(1000)
	s.ExpenseTotal = decimal.NewFromInt(950)

	content := FallbackReportContent(entity.ReportIncomeStatement, s)
	if got := content.Sections[2].Content; !strings.Contains(got, "Consider strategies to increase revenue") {
		t.Errorf("expected the low-margin assessment, got %q", got)
	}
}

func TestFallbackBalanceSheetContent(t *testing.T) {
	content := FallbackReportContent(entity.ReportBalanceSheet, sampleSummary())

	if content.Title != "Balance Sheet Analysis" {
		t.Errorf("title = %q", content.Title)
	}
	want := "This balance sheet shows total assets of $2,500.00, liabilities of $590.00, and equity of $1,910.00."
	if content.Summary != want {
		t.Errorf("summary = %q, want %q", content.Summary, want)
	}
	if len(content.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(content.Sections))
	}
	// Equity 1910 of 2500 assets, debt-to-equity 590/1910.
	if got := content.Sections[2].Content; !strings.Contains(got, "76.4% of your total assets") {
		t.Errorf("equity analysis = %q", got)
	}
	if got := content.Sections[3].Content; !strings.Contains(got, "Debt-to-equity ratio: 0.31.") {
		t.Errorf("health indicators = %q", got)
	}
}

func TestFallbackCashFlowContent(t *testing.T) {
	content := FallbackReportContent(entity.ReportCashFlow, sampleSummary())

	if content.Title != "Cash Flow Statement Analysis" {
		t.Errorf("title = %q", content.Title)
	}
	if got := content.Sections[0].Content; !strings.Contains(got, "Net operating cash flow: $1,910.00.") {
		t.Errorf("operating section = %q", got)
	}
	if got := content.Sections[3].Content; !strings.HasSuffix(got, "strong.") {
		t.Errorf("liquidity assessment = %q", got)
	}

	s := sampleSummary()
	s.IncomeTotal = decimal.NewFromInt(100)
	s.ExpenseTotal = decimal.NewFromInt(500)
	content = FallbackReportContent(entity.ReportCashFlow, s)
	if got := content.Sections[3].Content; !strings.Contains(got, "needs attention") {
		t.Errorf("expected the weak-liquidity assessment, got %q", got)
	}
}

func TestFallbackFinancialSummaryContent(t *testing.T) {
	content := FallbackReportContent(entity.ReportFinancialSummary, sampleSummary())

	if content.Title != "Comprehensive Financial Summary" {
		t.Errorf("title = %q", content.Title)
	}
	indicators := content.Sections[0].Content
	for _, want := range []string{
		"Net Income: $1,910.00",
		"Total Assets: $2,500.00",
		"Total Liabilities: $590.00",
		"Equity: $1,910.00",
		"Profit Margin: 76.4%",
	} {
		if !strings.Contains(indicators, want) {
			t.Errorf("key indicators missing %q:\n%s", want, indicators)
		}
	}
	if got := content.Sections[1].Content; !strings.Contains(got, "good, with positive net income") {
		t.Errorf("health assessment = %q", got)
	}

	s := sampleSummary()
	s.IncomeTotal = decimal.NewFromInt(100)
	s.ExpenseTotal = decimal.NewFromInt(500)
	content = FallbackReportContent(entity.ReportFinancialSummary, s)
	if got := content.Sections[1].Content; !strings.Contains(got, "areas for improvement") {
		t.Errorf("expected the improvement assessment, got %q", got)
	}
}

func TestFallbackInsights(t *testing.T) {
	insights := FallbackInsights(sampleSummary())

	if len(insights.KeyInsights) != 3 || len(insights.Trends) != 3 || len(insights.Recommendations) != 3 || len(insights.Risks) != 3 {
		t.Fatalf("unexpected insight block sizes: %d/%d/%d/%d",
			len(insights.KeyInsights), len(insights.Trends), len(insights.Recommendations), len(insights.Risks))
	}
	if insights.KeyInsights[0] != "Your net income for the period is $1,910.00" {
		t.Errorf("first insight = %q", insights.KeyInsights[0])
	}
	if insights.KeyInsights[2] != "Your top income source is Sale" {
		t.Errorf("top income insight = %q", insights.KeyInsights[2])
	}
	if insights.Recommendations[1] != "Review your highest expense category: Utility for potential savings" {
		t.Errorf("expense recommendation = %q", insights.Recommendations[1])
	}
}

func TestFallbackInsightsEmptyCategories(t *testing.T) {
	s := &entity.CompositeSummary{
		IncomeCategories:  map[string]decimal.Decimal{},
		ExpenseCategories: map[string]decimal.Decimal{},
		Assets:            map[string]decimal.Decimal{},
		Liabilities:       map[string]decimal.Decimal{},
	}

	insights := FallbackInsights(s)
	if insights.KeyInsights[2] != "Your top income source is N/A" {
		t.Errorf("top income insight = %q", insights.KeyInsights[2])
	}
	if insights.KeyInsights[1] != "Overall profit margin is 0.0%" {
		t.Errorf("margin insight = %q", insights.KeyInsights[1])
	}
}
