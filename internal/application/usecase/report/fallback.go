// Package report contains the report generation and insights use cases.
// Narrative content comes from the external collaborator when it is
// configured; a deterministic generator covers every report type so a report
// is always produced.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/application/format"
	"github.com/finbot/backend/internal/domain/entity"
)

type namedAmount struct {
	name   string
	amount decimal.Decimal
}

// topCategories returns up to limit entries ordered by amount descending,
// name ascending on ties.
func topCategories(categories map[string]decimal.Decimal, limit int) []namedAmount {
	entries := make([]namedAmount, 0, len(categories))
	for name, amount := range categories {
		entries = append(entries, namedAmount{name: name, amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].amount.Equal(entries[j].amount) {
			return entries[i].amount.GreaterThan(entries[j].amount)
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func joinCategories(categories map[string]decimal.Decimal, limit int) string {
	entries := topCategories(categories, limit)
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%s (%s)", entry.name, format.Currency(entry.amount)))
	}
	return strings.Join(parts, ", ")
}

func sumAmounts(categories map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range categories {
		total = total.Add(amount)
	}
	return total
}

func marginPct(netIncome, totalIncome decimal.Decimal) float64 {
	if totalIncome.Sign() <= 0 {
		return 0
	}
	return netIncome.InexactFloat64() / totalIncome.InexactFloat64() * 100
}

// FallbackReportContent builds deterministic narrative content for the given
// report type from the composite summary alone.
func FallbackReportContent(reportType entity.ReportType, summary *entity.CompositeSummary) *entity.ReportContent {
	totalIncome := summary.IncomeTotal
	totalExpenses := summary.ExpenseTotal
	netIncome := totalIncome.Sub(totalExpenses)

	switch reportType {
	case entity.ReportIncomeStatement:
		return incomeStatementContent(summary, totalIncome, totalExpenses, netIncome)
	case entity.ReportBalanceSheet:
		return balanceSheetContent(summary)
	case entity.ReportCashFlow:
		return cashFlowContent(netIncome)
	case entity.ReportFinancialSummary:
		return financialSummaryContent(summary, totalIncome, netIncome)
	}
	return nil
}

func incomeStatementContent(summary *entity.CompositeSummary, totalIncome, totalExpenses, netIncome decimal.Decimal) *entity.ReportContent {
	margin := marginPct(netIncome, totalIncome)

	profitability := fmt.Sprintf("Your overall profit margin is %s. ", format.Percent(margin))
	if margin > 15 {
		profitability += "This is a healthy margin indicating good financial management."
	} else {
		profitability += "Consider strategies to increase revenue or reduce expenses to improve this margin."
	}

	return &entity.ReportContent{
		Title: "Income Statement Analysis",
		Summary: fmt.Sprintf("This income statement shows a total revenue of %s and expenses of %s, resulting in a net income of %s.",
			format.Currency(totalIncome), format.Currency(totalExpenses), format.Currency(netIncome)),
		Sections: []entity.ReportSection{
			{
				Heading: "Revenue Breakdown",
				Content: "Your primary sources of revenue are from the following categories: " + joinCategories(summary.IncomeCategories, 3),
			},
			{
				Heading: "Expense Analysis",
				Content: "Your major expenses are in these categories: " + joinCategories(summary.ExpenseCategories, 3),
			},
			{
				Heading: "Profitability Assessment",
				Content: profitability,
			},
		},
	}
}

func balanceSheetContent(summary *entity.CompositeSummary) *entity.ReportContent {
	totalAssets := sumAmounts(summary.Assets)
	totalLiabilities := sumAmounts(summary.Liabilities)
	equity := totalAssets.Sub(totalLiabilities)

	equityShare := 0.0
	if totalAssets.Sign() > 0 {
		equityShare = equity.InexactFloat64() / totalAssets.InexactFloat64() * 100
	}
	debtToEquity := 0.0
	if equity.Sign() > 0 {
		debtToEquity = totalLiabilities.InexactFloat64() / equity.InexactFloat64()
	}

	return &entity.ReportContent{
		Title: "Balance Sheet Analysis",
		Summary: fmt.Sprintf("This balance sheet shows total assets of %s, liabilities of %s, and equity of %s.",
			format.Currency(totalAssets), format.Currency(totalLiabilities), format.Currency(equity)),
		Sections: []entity.ReportSection{
			{
				Heading: "Asset Composition",
				Content: "Your assets are primarily composed of: " + joinCategories(summary.Assets, 3),
			},
			{
				Heading: "Liability Structure",
				Content: "Your liabilities include: " + joinCategories(summary.Liabilities, 3),
			},
			{
				Heading: "Equity Analysis",
				Content: fmt.Sprintf("Your equity position of %s represents %s of your total assets.",
					format.Currency(equity), format.Percent(equityShare)),
			},
			{
				Heading: "Financial Health Indicators",
				Content: fmt.Sprintf("Debt-to-equity ratio: %.2f.", debtToEquity),
			},
		},
	}
}

func cashFlowContent(netIncome decimal.Decimal) *entity.ReportContent {
	liquidity := "Based on your cash flow, your liquidity appears to be "
	if netIncome.Sign() > 0 {
		liquidity += "strong."
	} else {
		liquidity += "an area that needs attention."
	}

	return &entity.ReportContent{
		Title:   "Cash Flow Statement Analysis",
		Summary: "This cash flow statement shows the movement of cash in and out of your finances over the reporting period.",
		Sections: []entity.ReportSection{
			{
				Heading: "Operating Cash Flow",
				Content: fmt.Sprintf("Net operating cash flow: %s. This represents the cash generated from your primary activities.",
					format.Currency(netIncome)),
			},
			{
				Heading: "Investing Activities",
				Content: "Cash flow from investing activities includes asset purchases and sales. Detailed breakdown requires transaction-level data.",
			},
			{
				Heading: "Financing Activities",
				Content: "Cash flow from financing activities includes debt payments and equity transactions. Detailed breakdown requires transaction-level data.",
			},
			{
				Heading: "Liquidity Assessment",
				Content: liquidity,
			},
		},
	}
}

func financialSummaryContent(summary *entity.CompositeSummary, totalIncome, netIncome decimal.Decimal) *entity.ReportContent {
	totalAssets := sumAmounts(summary.Assets)
	totalLiabilities := sumAmounts(summary.Liabilities)
	equity := totalAssets.Sub(totalLiabilities)

	health := "Based on the provided financial data, your overall financial health is "
	if netIncome.Sign() > 0 && totalLiabilities.LessThan(totalAssets) {
		health += "good, with positive net income and reasonable debt levels."
	} else {
		health += "showing some areas for improvement. Consider focusing on increasing income or reducing expenses."
	}

	return &entity.ReportContent{
		Title:   "Comprehensive Financial Summary",
		Summary: "This report provides an overview of your financial position and performance.",
		Sections: []entity.ReportSection{
			{
				Heading: "Key Financial Indicators",
				Content: fmt.Sprintf("Net Income: %s\nTotal Assets: %s\nTotal Liabilities: %s\nEquity: %s\nProfit Margin: %s",
					format.Currency(netIncome), format.Currency(totalAssets), format.Currency(totalLiabilities),
					format.Currency(equity), format.Percent(marginPct(netIncome, totalIncome))),
			},
			{
				Heading: "Financial Health Assessment",
				Content: health,
			},
			{
				Heading: "Executive Insights",
				Content: "Key areas to focus on include:\n" +
					"1. Managing major expense categories\n" +
					"2. Growing your strongest income sources\n" +
					"3. Maintaining adequate liquidity\n" +
					"4. Planning for future growth and contingencies",
			},
		},
	}
}

// FallbackInsights derives the insights block from the composite summary
// without the narrative collaborator.
func FallbackInsights(summary *entity.CompositeSummary) *entity.Insights {
	totalIncome := summary.IncomeTotal
	netIncome := totalIncome.Sub(summary.ExpenseTotal)
	margin := marginPct(netIncome, totalIncome)

	topIncome := "N/A"
	if entries := topCategories(summary.IncomeCategories, 1); len(entries) > 0 {
		topIncome = entries[0].name
	}
	topExpense := "N/A"
	if entries := topCategories(summary.ExpenseCategories, 1); len(entries) > 0 {
		topExpense = entries[0].name
	}

	return &entity.Insights{
		KeyInsights: []string{
			fmt.Sprintf("Your net income for the period is %s", format.Currency(netIncome)),
			fmt.Sprintf("Overall profit margin is %s", format.Percent(margin)),
			fmt.Sprintf("Your top income source is %s", topIncome),
		},
		Trends: []string{
			"Analysis of monthly trends would require time-series data",
			"Consider tracking your expenses over time to identify seasonal patterns",
			"Regular income sources provide stability to your financial situation",
		},
		Recommendations: []string{
			fmt.Sprintf("Focus on growing your top income category: %s", topIncome),
			fmt.Sprintf("Review your highest expense category: %s for potential savings", topExpense),
			"Consider diversifying income sources for greater financial stability",
		},
		Risks: []string{
			"Concentration risk if too dependent on a single income source",
			"Cash flow constraints if expenses continue to grow faster than income",
			"Inadequate emergency fund may pose liquidity risks",
		},
	}
}
