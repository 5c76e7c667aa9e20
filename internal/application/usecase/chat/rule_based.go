// Package chat contains the chat/query use cases: a deterministic
// keyword-driven responder over the composite summary, with an optional
// narrative collaborator in front of it.
package chat

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/application/format"
	"github.com/finbot/backend/internal/domain/entity"
)

// Topic keyword sets checked in order against the lowercased prompt.
var (
	incomeWords   = []string{"income", "revenue", "earnings", "sales", "money coming in"}
	expenseWords  = []string{"expense", "cost", "spending", "payments", "money going out"}
	profitWords   = []string{"profit", "net income", "bottom line", "earnings", "profitability"}
	balanceWords  = []string{"assets", "liabilities", "equity", "own", "owe", "balance sheet"}
	cashFlowWords = []string{"cash flow", "liquidity", "cash position"}
	healthPhrases = []string{"financial health", "how am i doing", "performance", "standing", "financial situation"}
)

var (
	categoryPattern = regexp.MustCompile(`(how much|what is|tell me about|show me) .* (spent on|earned from|paid for|received for|paid to|received from) (\w+)`)
	monthPattern    = regexp.MustCompile(`(how was|what about|show me|tell me about) (january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)`)
)

var monthCodes = map[string]string{
	"january": "01", "jan": "01", "february": "02", "feb": "02",
	"march": "03", "mar": "03", "april": "04", "apr": "04", "may": "05",
	"june": "06", "jun": "06", "july": "07", "jul": "07",
	"august": "08", "aug": "08", "september": "09", "sep": "09",
	"october": "10", "oct": "10", "november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

var monthNames = map[string]string{
	"01": "January", "02": "February", "03": "March", "04": "April",
	"05": "May", "06": "June", "07": "July", "08": "August",
	"09": "September", "10": "October", "11": "November", "12": "December",
}

// NoDataReply is returned when no dataset has been uploaded yet.
const NoDataReply = "I need financial data to answer your question. Please upload your transaction data first, or use the sample dataset."

// RuleBasedReply answers a free-text question from the composite summary
// alone. It is fully deterministic and serves as the mandated fallback when
// the narrative collaborator is unavailable or fails.
func RuleBasedReply(prompt string, summary *entity.CompositeSummary) string {
	if summary == nil {
		return NoDataReply
	}

	prompt = strings.ToLower(prompt)

	totalIncome := summary.IncomeTotal
	totalExpense := summary.ExpenseTotal
	netIncome := totalIncome.Sub(totalExpense)

	if containsAny(prompt, incomeWords) {
		return incomeReply(prompt, totalIncome, summary.IncomeCategories)
	}
	if containsAny(prompt, expenseWords) {
		return expenseReply(prompt, totalExpense, summary.ExpenseCategories)
	}
	if containsAny(prompt, profitWords) {
		return profitReply(totalIncome, netIncome)
	}
	if containsAny(prompt, balanceWords) {
		return balanceReply(prompt, summary.Assets, summary.Liabilities)
	}
	if containsAny(prompt, cashFlowWords) {
		return cashFlowReply(netIncome)
	}
	if reply, ok := categoryReply(prompt, summary); ok {
		return reply
	}
	if containsAny(prompt, healthPhrases) {
		return healthReply(totalIncome, netIncome, summary.Assets, summary.Liabilities)
	}
	if reply, ok := monthReply(prompt, summary.TimePeriods); ok {
		return reply
	}

	return generalReply(totalIncome, totalExpense, netIncome)
}

func containsAny(prompt string, words []string) bool {
	for _, word := range words {
		if strings.Contains(prompt, word) {
			return true
		}
	}
	return false
}

type namedAmount struct {
	name   string
	amount decimal.Decimal
}

// sortedByAmount returns the map entries ordered by amount descending, name
// ascending on ties so output is deterministic.
func sortedByAmount(categories map[string]decimal.Decimal) []namedAmount {
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
	return entries
}

func sumAmounts(categories map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range categories {
		total = total.Add(amount)
	}
	return total
}

// shareOf returns amount as a percentage of total, 0 when total is not
// positive.
func shareOf(amount, total decimal.Decimal) float64 {
	if total.Sign() <= 0 {
		return 0
	}
	return amount.InexactFloat64() / total.InexactFloat64() * 100
}

func incomeReply(prompt string, total decimal.Decimal, categories map[string]decimal.Decimal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on your data, your total income is %s.\n\n", format.Currency(total))

	if len(categories) > 0 {
		sb.WriteString("Your income sources are:\n")
		for _, entry := range sortedByAmount(categories) {
			fmt.Fprintf(&sb, "- %s: %s (%s of total)\n",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, total)))
		}
	}
	if strings.Contains(prompt, "trend") || strings.Contains(prompt, "over time") {
		sb.WriteString("\nFor income trends over time, see the monthly time periods in your financial summary.")
	}
	return sb.String()
}

func expenseReply(prompt string, total decimal.Decimal, categories map[string]decimal.Decimal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on your data, your total expenses are %s.\n\n", format.Currency(total))

	if len(categories) > 0 {
		sb.WriteString("Your main expense categories are:\n")
		for _, entry := range sortedByAmount(categories) {
			fmt.Fprintf(&sb, "- %s: %s (%s of total)\n",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, total)))
		}
	}
	if strings.Contains(prompt, "trend") || strings.Contains(prompt, "over time") {
		sb.WriteString("\nFor expense trends over time, see the monthly time periods in your financial summary.")
	}
	return sb.String()
}

func profitReply(totalIncome, netIncome decimal.Decimal) string {
	profitMargin := shareOf(netIncome, totalIncome)

	if netIncome.Sign() >= 0 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Your net income is %s, with a profit margin of %s.\n\n",
			format.Currency(netIncome), format.Percent(profitMargin))
		switch {
		case profitMargin > 15:
			sb.WriteString("This is a healthy profit margin, indicating good financial management.")
		case profitMargin > 5:
			sb.WriteString("This is an average profit margin. There might be room for improvement.")
		default:
			sb.WriteString("This profit margin is on the lower side. Consider ways to increase revenue or reduce costs.")
		}
		return sb.String()
	}

	return fmt.Sprintf("You have a net loss of %s.\n\nYour expenses exceed your income. Consider strategies to reduce costs or increase revenue.",
		format.Currency(netIncome.Abs()))
}

func balanceReply(prompt string, assets, liabilities map[string]decimal.Decimal) string {
	totalAssets := sumAmounts(assets)
	totalLiabilities := sumAmounts(liabilities)
	equity := totalAssets.Sub(totalLiabilities)

	var sb strings.Builder
	sb.WriteString("Based on your financial data:\n\n")
	fmt.Fprintf(&sb, "Total Assets: %s\n", format.Currency(totalAssets))
	fmt.Fprintf(&sb, "Total Liabilities: %s\n", format.Currency(totalLiabilities))
	fmt.Fprintf(&sb, "Equity: %s\n\n", format.Currency(equity))

	if len(assets) > 0 {
		sb.WriteString("Asset breakdown:\n")
		for _, entry := range sortedByAmount(assets) {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, totalAssets)))
		}
	}
	if len(liabilities) > 0 && strings.Contains(prompt, "liabilities") {
		sb.WriteString("\nLiability breakdown:\n")
		for _, entry := range sortedByAmount(liabilities) {
			fmt.Fprintf(&sb, "- %s: %s (%s)\n",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, totalLiabilities)))
		}
	}
	return sb.String()
}

func cashFlowReply(netIncome decimal.Decimal) string {
	var sb strings.Builder
	sb.WriteString("Based on your transaction data:\n\n")
	fmt.Fprintf(&sb, "Net Cash Flow: %s\n", format.Currency(netIncome))
	if netIncome.Sign() > 0 {
		sb.WriteString("You have positive cash flow, which is good for your financial health.")
	} else {
		sb.WriteString("You have negative cash flow. This means you're spending more than you're bringing in, which may lead to liquidity issues if continued.")
	}
	return sb.String()
}

func categoryReply(prompt string, summary *entity.CompositeSummary) (string, bool) {
	match := categoryPattern.FindStringSubmatch(prompt)
	if match == nil {
		return "", false
	}
	keyword := strings.ToLower(match[3])

	for _, entry := range sortedByAmount(summary.IncomeCategories) {
		if strings.Contains(strings.ToLower(entry.name), keyword) {
			return fmt.Sprintf("For %s, you earned %s, which is %s of your total income.",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, summary.IncomeTotal))), true
		}
	}
	for _, entry := range sortedByAmount(summary.ExpenseCategories) {
		if strings.Contains(strings.ToLower(entry.name), keyword) {
			return fmt.Sprintf("For %s, you spent %s, which is %s of your total expenses.",
				entry.name, format.Currency(entry.amount), format.Percent(shareOf(entry.amount, summary.ExpenseTotal))), true
		}
	}
	return fmt.Sprintf("I couldn't find information about '%s' in your financial data. Please check your category names or try a different query.", match[3]), true
}

// healthReply is the descriptive financial-health path. Unlike the ratio
// calculator, an undefined debt-to-equity denominator here reads as an
// unbounded value for the prose framing, not as zero.
func healthReply(totalIncome, netIncome decimal.Decimal, assets, liabilities map[string]decimal.Decimal) string {
	profitMargin := shareOf(netIncome, totalIncome)
	totalAssets := sumAmounts(assets)
	totalLiabilities := sumAmounts(liabilities)
	equity := totalAssets.Sub(totalLiabilities)

	debtToEquity := math.Inf(1)
	if equity.Sign() > 0 {
		debtToEquity = totalLiabilities.InexactFloat64() / equity.InexactFloat64()
	}

	var sb strings.Builder
	sb.WriteString("Financial Health Summary:\n\n")

	sb.WriteString("Profitability: ")
	switch {
	case profitMargin > 15:
		fmt.Fprintf(&sb, "Strong - Your profit margin of %s is excellent\n", format.Percent(profitMargin))
	case profitMargin > 5:
		fmt.Fprintf(&sb, "Good - Your profit margin of %s is solid\n", format.Percent(profitMargin))
	case profitMargin > 0:
		fmt.Fprintf(&sb, "Fair - Your profit margin of %s is positive but could be improved\n", format.Percent(profitMargin))
	default:
		sb.WriteString("Poor - You're operating at a loss\n")
	}

	sb.WriteString("Liquidity: ")
	if netIncome.Sign() > 0 {
		sb.WriteString("Positive cash flow indicates good liquidity\n")
	} else {
		sb.WriteString("Negative cash flow indicates potential liquidity concerns\n")
	}

	sb.WriteString("Solvency: ")
	switch {
	case debtToEquity < 1:
		fmt.Fprintf(&sb, "Strong - Your debt-to-equity ratio is healthy at %.2f\n", debtToEquity)
	case debtToEquity < 2:
		fmt.Fprintf(&sb, "Moderate - Your debt-to-equity ratio of %.2f is acceptable\n", debtToEquity)
	case !math.IsInf(debtToEquity, 1):
		fmt.Fprintf(&sb, "Weak - Your debt-to-equity ratio of %.2f is high\n", debtToEquity)
	default:
		sb.WriteString("N/A - Unable to calculate debt-to-equity ratio\n")
	}

	return sb.String()
}

func monthReply(prompt string, buckets []entity.PeriodBucket) (string, bool) {
	if len(buckets) == 0 {
		return "", false
	}
	match := monthPattern.FindStringSubmatch(prompt)
	if match == nil {
		return "", false
	}
	monthName := match[2]
	code, ok := monthCodes[monthName]
	if !ok {
		return "", false
	}

	for _, bucket := range buckets {
		if !strings.HasSuffix(bucket.Period, "-"+code) {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Financial summary for %s:\n\n", monthNames[code])
		fmt.Fprintf(&sb, "Income: %s\n", format.Currency(bucket.Income))
		fmt.Fprintf(&sb, "Expenses: %s\n", format.Currency(bucket.Expense))
		fmt.Fprintf(&sb, "Net Result: %s", format.Currency(bucket.Income.Sub(bucket.Expense)))
		return sb.String(), true
	}
	return fmt.Sprintf("I couldn't find data specifically for %s in your transaction history.", monthNames[code]), true
}

func generalReply(totalIncome, totalExpense, netIncome decimal.Decimal) string {
	return fmt.Sprintf(`Based on your financial data:

Total Income: %s
Total Expenses: %s
Net Income: %s
Profit Margin: %s

To get more specific insights, try asking about:
- Income or expense categories
- Profit margins and financial health
- Balance sheet information (assets, liabilities)
- Trends over specific time periods
`,
		format.Currency(totalIncome),
		format.Currency(totalExpense),
		format.Currency(netIncome),
		format.Percent(shareOf(netIncome, totalIncome)))
}
