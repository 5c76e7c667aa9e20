package chat

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
		TimePeriods: []entity.PeriodBucket{
			{Period: "2023-01", Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(250), Net: decimal.NewFromInt(750)},
			{Period: "2023-02", Income: decimal.NewFromInt(1500), Expense: decimal.NewFromInt(340), Net: decimal.NewFromInt(1160)},
		},
	}
}

func TestRuleBasedReplyNoData(t *testing.T) {
	if got := RuleBasedReply("what is my income?", nil); got != NoDataReply {
		t.Errorf("nil summary reply = %q, want the no-data reply", got)
	}
}

func TestRuleBasedReplyIncome(t *testing.T) {
	reply := RuleBasedReply("What is my total income?", sampleSummary())

	if !strings.Contains(reply, "your total income is $2,500.00") {
		t.Errorf("income total missing from reply:\n%s", reply)
	}
	// Sources listed by amount descending.
	saleAt := strings.Index(reply, "- Sale: $1,500.00 (60.0% of total)")
	salaryAt := strings.Index(reply, "- Salary: $1,000.00 (40.0% of total)")
	if saleAt == -1 || salaryAt == -1 || saleAt > salaryAt {
		t.Errorf("income sources missing or misordered:\n%s", reply)
	}
}

func TestRuleBasedReplyExpenseTrend(t *testing.T) {
	reply := RuleBasedReply("how has my spending changed over time?", sampleSummary())

	if !strings.Contains(reply, "your total expenses are $590.00") {
		t.Errorf("expense total missing from reply:\n%s", reply)
	}
	if !strings.Contains(reply, "For expense trends over time") {
		t.Errorf("trend hint missing from reply:\n%s", reply)
	}
}

func TestRuleBasedReplyProfit(t *testing.T) {
	// Margin 1910/2500 = 76.4%, well above the healthy threshold.
	reply := RuleBasedReply("what is my profit?", sampleSummary())
	if !strings.Contains(reply, "Your net income is $1,910.00, with a profit margin of 76.4%.") {
		t.Errorf("profit line missing from reply:\n%s", reply)
	}
	if !strings.Contains(reply, "healthy profit margin") {
		t.Errorf("expected the healthy-margin assessment:\n%s", reply)
	}

	loss := sampleSummary()
	loss.IncomeTotal = decimal.NewFromInt(500)
	loss.ExpenseTotal = decimal.NewFromInt(800)
	reply = RuleBasedReply("what is my profit?", loss)
	if !strings.Contains(reply, "You have a net loss of $300.00.") {
		t.Errorf("expected the net-loss framing:\n%s", reply)
	}
}

func TestRuleBasedReplyBalance(t *testing.T) {
	reply := RuleBasedReply("what are my assets and liabilities?", sampleSummary())

	for _, want := range []string{
		"Total Assets: $2,500.00",
		"Total Liabilities: $590.00",
		"Equity: $1,910.00",
		"- General Assets: $2,500.00 (100.0%)",
		"Liability breakdown:",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("balance reply missing %q:\n%s", want, reply)
		}
	}
}

func TestRuleBasedReplyCashFlow(t *testing.T) {
	reply := RuleBasedReply("how is my cash flow?", sampleSummary())
	if !strings.Contains(reply, "Net Cash Flow: $1,910.00") || !strings.Contains(reply, "positive cash flow") {
		t.Errorf("unexpected cash flow reply:\n%s", reply)
	}

	negative := sampleSummary()
	negative.IncomeTotal = decimal.NewFromInt(100)
	negative.ExpenseTotal = decimal.NewFromInt(400)
	reply = RuleBasedReply("how is my cash flow?", negative)
	if !strings.Contains(reply, "negative cash flow") {
		t.Errorf("expected the negative cash flow warning:\n%s", reply)
	}
}

func TestRuleBasedReplyCategoryQuery(t *testing.T) {
	reply := RuleBasedReply("how much have I spent on rent this year?", sampleSummary())
	if !strings.Contains(reply, "For Rent, you spent $250.00") {
		t.Errorf("category reply missing:\n%s", reply)
	}

	reply = RuleBasedReply("how much did I get earned from salary?", sampleSummary())
	if !strings.Contains(reply, "For Salary, you earned $1,000.00") {
		t.Errorf("income category reply missing:\n%s", reply)
	}

	reply = RuleBasedReply("how much have I spent on yachts recently?", sampleSummary())
	if !strings.Contains(reply, "I couldn't find information about 'yachts'") {
		t.Errorf("expected the unknown-category reply:\n%s", reply)
	}
}

func TestRuleBasedReplyHealth(t *testing.T) {
	reply := RuleBasedReply("how is my financial health?", sampleSummary())

	for _, want := range []string{
		"Financial Health Summary:",
		"Profitability: Strong",
		"Liquidity: Positive cash flow",
		"Solvency: Strong - Your debt-to-equity ratio is healthy at 0.31",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("health reply missing %q:\n%s", want, reply)
		}
	}
}

func TestRuleBasedReplyHealthNoEquity(t *testing.T) {
	s := sampleSummary()
	s.Assets = amounts("General Assets", 500)
	s.Liabilities = amounts("General Liabilities", 500)

	reply := RuleBasedReply("how is my financial health?", s)
	if !strings.Contains(reply, "N/A - Unable to calculate debt-to-equity ratio") {
		t.Errorf("expected the undefined debt-to-equity line:\n%s", reply)
	}
}

func TestRuleBasedReplyMonth(t *testing.T) {
	reply := RuleBasedReply("how was february?", sampleSummary())
	for _, want := range []string{
		"Financial summary for February:",
		"Income: $1,500.00",
		"Expenses: $340.00",
		"Net Result: $1,160.00",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("month reply missing %q:\n%s", want, reply)
		}
	}

	reply = RuleBasedReply("how was march?", sampleSummary())
	if !strings.Contains(reply, "I couldn't find data specifically for March") {
		t.Errorf("expected the missing-month reply:\n%s", reply)
	}
}

func TestRuleBasedReplyGeneral(t *testing.T) {
	reply := RuleBasedReply("hello there", sampleSummary())

	for _, want := range []string{
		"Total Income: $2,500.00",
		"Total Expenses: $590.00",
		"Net Income: $1,910.00",
		"Profit Margin: 76.4%",
		"try asking about",
	} {
		if !strings.Contains(reply, want) {
			t.Errorf("general reply missing %q:\n%s", want, reply)
		}
	}
}
