package statement

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
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

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return &parsed
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

func TestComputeIncomeStatement(t *testing.T) {
	stmt, err := ComputeIncomeStatement(fourRowDataset(t), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !stmt.TotalIncome.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("total income = %s, want 2500", stmt.TotalIncome)
	}
	if !stmt.TotalExpenses.Equal(decimal.NewFromInt(590)) {
		t.Errorf("total expenses = %s, want 590", stmt.TotalExpenses)
	}
	if !stmt.NetIncome.Equal(decimal.NewFromInt(1910)) {
		t.Errorf("net income = %s, want 1910", stmt.NetIncome)
	}

	// No subcategory column means empty breakdowns, not nil and not
	// description-keyed ones.
	if len(stmt.IncomeBreakdown) != 0 || len(stmt.ExpenseBreakdown) != 0 {
		t.Errorf("expected empty breakdowns, got %v / %v", stmt.IncomeBreakdown, stmt.ExpenseBreakdown)
	}
	if stmt.Period.StartDate != nil || stmt.Period.EndDate != nil {
		t.Errorf("unbounded period should have nil dates, got %+v", stmt.Period)
	}
}

func TestComputeIncomeStatementDateRange(t *testing.T) {
	ds := fourRowDataset(t)

	jan, err := ComputeIncomeStatement(ds, date(t, "2023-01-01"), date(t, "2023-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !jan.TotalIncome.Equal(decimal.NewFromInt(1000)) || !jan.TotalExpenses.Equal(decimal.NewFromInt(250)) {
		t.Errorf("january totals = %s / %s, want 1000 / 250", jan.TotalIncome, jan.TotalExpenses)
	}
	if jan.Period.StartDate == nil || *jan.Period.StartDate != "2023-01-01" {
		t.Errorf("period start = %v, want 2023-01-01", jan.Period.StartDate)
	}

	// Bounds are inclusive on both sides.
	exact, err := ComputeIncomeStatement(ds, date(t, "2023-01-15"), date(t, "2023-02-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exact.TotalIncome.Equal(decimal.NewFromInt(1500)) || !exact.TotalExpenses.Equal(decimal.NewFromInt(250)) {
		t.Errorf("inclusive bounds totals = %s / %s, want 1500 / 250", exact.TotalIncome, exact.TotalExpenses)
	}

	// Disjoint monthly views partition the unfiltered totals.
	feb, err := ComputeIncomeStatement(ds, date(t, "2023-02-01"), date(t, "2023-02-28"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	full, err := ComputeIncomeStatement(ds, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !jan.NetIncome.Add(feb.NetIncome).Equal(full.NetIncome) {
		t.Errorf("monthly nets %s + %s != full net %s", jan.NetIncome, feb.NetIncome, full.NetIncome)
	}
}

func TestComputeIncomeStatementSubcategoryBreakdown(t *testing.T) {
	salary := row(t, "2023-01-01", "1000", "Salary")
	salary.Subcategory = "Employment"
	sale := row(t, "2023-02-01", "1500", "Sale")
	sale.Subcategory = "Product"
	rent := row(t, "2023-01-15", "-250", "Rent")
	rent.Subcategory = "Housing"
	utility := row(t, "2023-02-15", "-340", "Utility")
	utility.Subcategory = "Housing"

	ds := testDataset(t, entity.ColumnSet{Subcategory: true}, salary, sale, rent, utility)

	stmt, err := ComputeIncomeStatement(ds, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := stmt.IncomeBreakdown["Employment"]; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Employment income = %s, want 1000", got)
	}
	if got := stmt.IncomeBreakdown["Product"]; !got.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("Product income = %s, want 1500", got)
	}
	// Expense breakdown entries are accumulated then reported as absolutes.
	if got := stmt.ExpenseBreakdown["Housing"]; !got.Equal(decimal.NewFromInt(590)) {
		t.Errorf("Housing expenses = %s, want 590", got)
	}
}

func TestComputeIncomeStatementSuppliedCategories(t *testing.T) {
	refund := row(t, "2023-01-10", "-50", "Refund Reversal")
	refund.Category = entity.CategoryIncome

	ds := testDataset(t, entity.ColumnSet{Category: true},
		row(t, "2023-01-01", "1000", "Salary"),
		refund,
	)
	ds.Rows[0].Category = entity.CategoryIncome

	stmt, err := ComputeIncomeStatement(ds, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A supplied category wins over the amount sign, so the negative refund
	// still counts as income.
	if !stmt.TotalIncome.Equal(decimal.NewFromInt(950)) {
		t.Errorf("total income = %s, want 950", stmt.TotalIncome)
	}
	if !stmt.TotalExpenses.Equal(decimal.Zero) {
		t.Errorf("total expenses = %s, want 0", stmt.TotalExpenses)
	}
}

func TestComputeIncomeStatementMissingAmount(t *testing.T) {
	ds := entity.NewDataset(entity.ColumnSet{Date: true, Description: true}, nil)

	_, err := ComputeIncomeStatement(ds, nil, nil)
	if err == nil {
		t.Fatal("expected error for dataset without amount column")
	}

	var compErr *domainerror.ComputationError
	if !errors.As(err, &compErr) {
		t.Fatalf("expected ComputationError, got %T", err)
	}
	if compErr.Code != domainerror.ErrCodeMissingAmount {
		t.Errorf("code = %s, want %s", compErr.Code, domainerror.ErrCodeMissingAmount)
	}
	if !errors.Is(err, domainerror.ErrMissingAmountColumn) {
		t.Errorf("error chain should include ErrMissingAmountColumn")
	}
}

func TestComputeIncomeStatementDoesNotMutateDataset(t *testing.T) {
	ds := fourRowDataset(t)

	if _, err := ComputeIncomeStatement(ds, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ds.Columns.Category {
		t.Error("classification should run on a clone, not the stored dataset")
	}
	for i, r := range ds.Rows {
		if r.Category != "" {
			t.Errorf("row %d category mutated to %q", i, r.Category)
		}
	}
}
