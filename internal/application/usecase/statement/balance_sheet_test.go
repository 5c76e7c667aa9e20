package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

func TestComputeBalanceSheetSignSplit(t *testing.T) {
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1000", "Opening Balance"),
	)

	sheet, err := ComputeBalanceSheet(ds, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sheet.TotalAssets.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total assets = %s, want 1000", sheet.TotalAssets)
	}
	if !sheet.TotalLiabilities.Equal(decimal.Zero) {
		t.Errorf("total liabilities = %s, want 0", sheet.TotalLiabilities)
	}
	if !sheet.TotalEquity.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total equity = %s, want 1000", sheet.TotalEquity)
	}

	if got := sheet.Assets["General Assets"]; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("General Assets = %s, want 1000", got)
	}
	// Zero liabilities get no named entry.
	if len(sheet.Liabilities) != 0 {
		t.Errorf("expected no liability entries, got %v", sheet.Liabilities)
	}
	if sheet.AsOfDate != time.Now().Format("2006-01-02") {
		t.Errorf("as-of date = %s, want today", sheet.AsOfDate)
	}
}

func TestComputeBalanceSheetAccountTypes(t *testing.T) {
	cash := row(t, "2023-01-01", "5000", "Checking")
	cash.AccountType = "Cash"
	receivable := row(t, "2023-01-05", "1200", "Client Invoice")
	receivable.AccountType = "Receivable"
	loan := row(t, "2023-01-10", "-3000", "Car Loan")
	loan.AccountType = "Loan"
	salary := row(t, "2023-01-15", "800", "Salary")
	salary.AccountType = "Payroll" // no keyword match, ignored

	ds := testDataset(t, entity.ColumnSet{AccountType: true}, cash, receivable, loan, salary)

	sheet, err := ComputeBalanceSheet(ds, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sheet.TotalAssets.Equal(decimal.NewFromInt(6200)) {
		t.Errorf("total assets = %s, want 6200", sheet.TotalAssets)
	}
	// Liabilities are reported as absolute values.
	if !sheet.TotalLiabilities.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("total liabilities = %s, want 3000", sheet.TotalLiabilities)
	}
	if !sheet.TotalEquity.Equal(decimal.NewFromInt(3200)) {
		t.Errorf("total equity = %s, want 3200", sheet.TotalEquity)
	}

	if got := sheet.Assets["Cash"]; !got.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Cash assets = %s, want 5000", got)
	}
	if got := sheet.Liabilities["Loan"]; !got.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("Loan liabilities = %s, want 3000", got)
	}
	if _, ok := sheet.Assets["Payroll"]; ok {
		t.Error("unmatched account type should not bucket as an asset")
	}
}

func TestComputeBalanceSheetAsOfDate(t *testing.T) {
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1000", "Salary"),
		row(t, "2023-03-01", "2000", "Bonus"),
	)

	sheet, err := ComputeBalanceSheet(ds, date(t, "2023-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sheet.TotalAssets.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("assets as of january = %s, want 1000", sheet.TotalAssets)
	}
	if sheet.AsOfDate != "2023-01-31" {
		t.Errorf("as-of date = %s, want 2023-01-31", sheet.AsOfDate)
	}
}

func TestComputeBalanceSheetBalanceIdentity(t *testing.T) {
	ds := testDataset(t, entity.ColumnSet{},
		row(t, "2023-01-01", "1250.75", "Salary"),
		row(t, "2023-01-02", "-430.10", "Rent"),
		row(t, "2023-01-03", "89.99", "Refund"),
		row(t, "2023-01-04", "-1200", "Loan Payment"),
	)

	sheet, err := ComputeBalanceSheet(ds, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sheet.TotalAssets.Equal(sheet.TotalLiabilities.Add(sheet.TotalEquity)) {
		t.Errorf("assets %s != liabilities %s + equity %s",
			sheet.TotalAssets, sheet.TotalLiabilities, sheet.TotalEquity)
	}
}
