package summary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

func row(t *testing.T, date, amount, description string) entity.Transaction {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", amount, err)
	}
	return entity.Transaction{
		Date:        parsed,
		Amount:      value,
		Description: description,
		Month:       int(parsed.Month()),
		Year:        parsed.Year(),
		MonthYear:   parsed.Format("2006-01"),
	}
}

func testDataset(t *testing.T, columns entity.ColumnSet, rows ...entity.Transaction) *entity.Dataset {
	t.Helper()
	columns.Date = true
	columns.Amount = true
	columns.Description = true
	return entity.NewDataset(columns, rows)
}

func fourRowDataset(t *testing.T) *entity.Dataset {
	t.Helper()
	return testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1000", "Salary"),
		row(t, "2023-01-15", "-250", "Rent"),
		row(t, "2023-02-01", "1500", "Sale"),
		row(t, "2023-02-15", "-340", "Utility"),
	)
}

func TestSummarize(t *testing.T) {
	s := Summarize(fourRowDataset(t))

	if !s.IncomeTotal.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("income total = %s, want 2500", s.IncomeTotal)
	}
	if !s.ExpenseTotal.Equal(decimal.NewFromInt(590)) {
		t.Errorf("expense total = %s, want 590", s.ExpenseTotal)
	}
	if !s.NetIncome.Equal(decimal.NewFromInt(1910)) {
		t.Errorf("net income = %s, want 1910", s.NetIncome)
	}

	o := s.DataOverview
	if o.TransactionCount != 4 {
		t.Errorf("transaction count = %d, want 4", o.TransactionCount)
	}
	if o.DateRangeStart == nil || *o.DateRangeStart != "2023-01-01" {
		t.Errorf("date range start = %v, want 2023-01-01", o.DateRangeStart)
	}
	if o.DateRangeEnd == nil || *o.DateRangeEnd != "2023-02-15" {
		t.Errorf("date range end = %v, want 2023-02-15", o.DateRangeEnd)
	}
	// Mean of 1000, -250, 1500, -340.
	if !o.AverageTransaction.Equal(decimal.NewFromFloat(477.5)) {
		t.Errorf("average transaction = %s, want 477.5", o.AverageTransaction)
	}

	// With descriptions present and no subcategory column, breakdowns key
	// by description.
	if got := s.IncomeCategories["Salary"]; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Salary income = %s, want 1000", got)
	}
	if got := s.ExpenseCategories["Rent"]; !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Rent expense = %s, want 250 (absolute)", got)
	}

	if s.IncomeStatement == nil || s.BalanceSheet == nil || s.CashFlow == nil || s.FinancialRatios == nil {
		t.Error("all statement blocks should be present")
	}
}

func TestSummarizePeriodBuckets(t *testing.T) {
	s := Summarize(fourRowDataset(t))

	if len(s.TimePeriods) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(s.TimePeriods))
	}

	jan := s.TimePeriods[0]
	if jan.Period != "2023-01" {
		t.Errorf("first bucket = %s, want 2023-01", jan.Period)
	}
	if !jan.Income.Equal(decimal.NewFromInt(1000)) || !jan.Expense.Equal(decimal.NewFromInt(250)) || !jan.Net.Equal(decimal.NewFromInt(750)) {
		t.Errorf("january bucket = %s / %s / %s, want 1000 / 250 / 750", jan.Income, jan.Expense, jan.Net)
	}
	if jan.Delta != nil {
		t.Error("first bucket carries no delta")
	}

	feb := s.TimePeriods[1]
	if !feb.Income.Equal(decimal.NewFromInt(1500)) || !feb.Expense.Equal(decimal.NewFromInt(340)) || !feb.Net.Equal(decimal.NewFromInt(1160)) {
		t.Errorf("february bucket = %s / %s / %s, want 1500 / 340 / 1160", feb.Income, feb.Expense, feb.Net)
	}
	if feb.Delta == nil {
		t.Fatal("second bucket should carry a delta")
	}
	if !feb.Delta.IncomeChange.Equal(decimal.NewFromInt(500)) {
		t.Errorf("income change = %s, want 500", feb.Delta.IncomeChange)
	}
	if feb.Delta.IncomeChangePct != 50.0 {
		t.Errorf("income change pct = %v, want 50.0", feb.Delta.IncomeChangePct)
	}
}

func TestSummarizeTrends(t *testing.T) {
	s := Summarize(fourRowDataset(t))

	trends := s.Trends
	if trends == nil {
		t.Fatal("expected a trend summary for two buckets")
	}
	if trends.PeriodCount != 2 || trends.StartPeriod != "2023-01" || trends.EndPeriod != "2023-02" {
		t.Errorf("trend window = %d %s..%s, want 2 2023-01..2023-02", trends.PeriodCount, trends.StartPeriod, trends.EndPeriod)
	}
	if trends.IncomeTrend != entity.TrendIncreasing {
		t.Errorf("income trend = %s, want %s", trends.IncomeTrend, entity.TrendIncreasing)
	}
	if trends.ExpenseTrend != entity.TrendIncreasing {
		t.Errorf("expense trend = %s, want %s", trends.ExpenseTrend, entity.TrendIncreasing)
	}
	if trends.NetTrend != entity.TrendImproving {
		t.Errorf("net trend = %s, want %s", trends.NetTrend, entity.TrendImproving)
	}
}

func TestSummarizeSingleBucketCollapse(t *testing.T) {
	// No subcategory column and no description values: everything collapses
	// into the general buckets.
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1000", ""),
		row(t, "2023-01-15", "-250", ""),
		row(t, "2023-02-01", "1500", ""),
	)

	s := Summarize(ds)

	if len(s.IncomeCategories) != 1 {
		t.Fatalf("expected a single income bucket, got %v", s.IncomeCategories)
	}
	if got := s.IncomeCategories["General Income"]; !got.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("General Income = %s, want 2500", got)
	}
	if got := s.ExpenseCategories["General Expenses"]; !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("General Expenses = %s, want 250", got)
	}
}

func TestSummarizeUnboundedPercent(t *testing.T) {
	// January has no income, February does: the percentage change has no
	// finite value and carries the unbounded sentinel.
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-15", "-250", "Rent"),
		row(t, "2023-02-01", "1500", "Sale"),
	)

	s := Summarize(ds)
	if len(s.TimePeriods) != 2 || s.TimePeriods[1].Delta == nil {
		t.Fatalf("expected two buckets with a delta, got %+v", s.TimePeriods)
	}
	delta := s.TimePeriods[1].Delta

	if !delta.IncomeChangePct.IsUnbounded() {
		t.Errorf("income change pct = %v, want unbounded", delta.IncomeChangePct)
	}
	if delta.ExpenseChangePct != -100 {
		t.Errorf("expense change pct = %v, want -100 for 250 -> 0", delta.ExpenseChangePct)
	}
}

func TestSummarizeZeroBaseZeroChange(t *testing.T) {
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-15", "-250", "Rent"),
		row(t, "2023-02-15", "-250", "Rent"),
	)

	s := Summarize(ds)
	delta := s.TimePeriods[1].Delta
	if delta.IncomeChangePct != 0 {
		t.Errorf("income change pct = %v, want 0 for zero base and zero change", delta.IncomeChangePct)
	}
	if delta.ExpenseChangePct != 0 {
		t.Errorf("expense change pct = %v, want 0 for identical expenses", delta.ExpenseChangePct)
	}
	if s.Trends.ExpenseTrend != entity.TrendStable {
		t.Errorf("expense trend = %s, want %s", s.Trends.ExpenseTrend, entity.TrendStable)
	}
}

func TestSummarizeSinglePeriodHasNoTrends(t *testing.T) {
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1000", "Salary"),
		row(t, "2023-01-15", "-250", "Rent"),
	)

	s := Summarize(ds)
	if len(s.TimePeriods) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(s.TimePeriods))
	}
	if s.Trends != nil {
		t.Errorf("expected no trend summary for a single bucket, got %+v", s.Trends)
	}
}

func TestSummarizePartialWithoutAmounts(t *testing.T) {
	// Without an amount column the calculators fail; the summary still
	// carries the overview and empty blocks instead of propagating the
	// failure.
	ds := entity.NewDataset(entity.ColumnSet{Date: true, Description: true}, []entity.Transaction{
		{Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Description: "Salary", Month: 1, Year: 2023, MonthYear: "2023-01"},
	})

	s := Summarize(ds)

	if s.IncomeStatement != nil || s.BalanceSheet != nil || s.CashFlow != nil || s.FinancialRatios != nil {
		t.Error("statement blocks should be nil when the amount column is missing")
	}
	if s.DataOverview.TransactionCount != 1 {
		t.Errorf("transaction count = %d, want 1", s.DataOverview.TransactionCount)
	}
	if s.Assets == nil || s.Liabilities == nil {
		t.Error("asset and liability maps should be empty, not nil")
	}
}
