package entity

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// UnboundedChangePct is the sentinel for a percentage change whose base is
// zero while the delta is not: the prior period had nothing to compare
// against, so the increase is unbounded rather than an error.
var UnboundedChangePct = Percent(math.Inf(1))

// Percent is a percentage value that survives JSON encoding: the unbounded
// sentinel (and any other non-finite value) is written as null, since JSON
// has no representation for infinity.
type Percent float64

// IsUnbounded reports whether the percentage carries the unbounded sentinel.
func (p Percent) IsUnbounded() bool {
	return math.IsInf(float64(p), 0)
}

// MarshalJSON writes non-finite values as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON restores null to the unbounded sentinel, the only value
// that marshals to null.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = UnboundedChangePct
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Percent(f)
	return nil
}

// Period is the inclusive date range an aggregate was computed over. A nil
// bound means unbounded on that side. Dates are "YYYY-MM-DD".
type Period struct {
	StartDate *string
	EndDate   *string
}

// IncomeStatement is the immutable income-statement aggregate for one
// filtered view of a dataset.
type IncomeStatement struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal // absolute value
	NetIncome        decimal.Decimal
	IncomeBreakdown  map[string]decimal.Decimal // by subcategory; empty when the column is absent
	ExpenseBreakdown map[string]decimal.Decimal
	Period           Period
}

// BalanceSheet is the immutable balance-sheet aggregate as of one date.
// Equity is always the residual assets minus liabilities.
type BalanceSheet struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal // absolute value
	TotalEquity      decimal.Decimal
	Assets           map[string]decimal.Decimal
	Liabilities      map[string]decimal.Decimal
	AsOfDate         string // "YYYY-MM-DD"
}

// CashFlow is the immutable cash-flow aggregate for one filtered view.
type CashFlow struct {
	OperatingCashFlow decimal.Decimal
	InvestingCashFlow decimal.Decimal
	FinancingCashFlow decimal.Decimal
	NetCashFlow       decimal.Decimal
	Period            Period
}

// FinancialRatios holds the five standard ratios, always computed over the
// full unfiltered dataset. A zero or non-positive denominator yields 0,
// never an error and never infinity.
type FinancialRatios struct {
	ProfitMargin     float64
	ReturnOnAssets   float64
	ReturnOnEquity   float64
	DebtToEquity     float64
	AssetToLiability float64
}

// PeriodDelta holds the change of one bucket against its immediate
// predecessor. Percentage fields may carry UnboundedChangePct.
type PeriodDelta struct {
	IncomeChange     decimal.Decimal
	IncomeChangePct  Percent
	ExpenseChange    decimal.Decimal
	ExpenseChangePct Percent
	NetChange        decimal.Decimal
	NetChangePct     Percent
}

// PeriodBucket is one calendar month's aggregate within the time-series
// view. Delta is nil for the chronologically first bucket.
type PeriodBucket struct {
	Period            string // "YYYY-MM"
	Income            decimal.Decimal
	Expense           decimal.Decimal // absolute value
	Net               decimal.Decimal
	IncomeCategories  map[string]decimal.Decimal
	ExpenseCategories map[string]decimal.Decimal
	Delta             *PeriodDelta
}

// TrendDirection labels the qualitative movement of a metric between the
// first and last bucket; flat means an exactly zero delta.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendDecreasing TrendDirection = "decreasing"
	TrendImproving  TrendDirection = "improving"
	TrendWorsening  TrendDirection = "worsening"
	TrendStable     TrendDirection = "stable"
)

// TrendSummary compares the first and last period bucket. Present only when
// at least two buckets exist.
type TrendSummary struct {
	PeriodCount      int
	StartPeriod      string
	EndPeriod        string
	IncomeChange     decimal.Decimal
	IncomeChangePct  Percent
	ExpenseChange    decimal.Decimal
	ExpenseChangePct Percent
	NetChange        decimal.Decimal
	NetChangePct     Percent
	IncomeTrend      TrendDirection
	ExpenseTrend     TrendDirection
	NetTrend         TrendDirection
}

// DataOverview holds basic statistics about the dataset.
type DataOverview struct {
	TransactionCount   int
	DateRangeStart     *string // "YYYY-MM-DD", nil when the dataset is empty
	DateRangeEnd       *string
	AverageTransaction decimal.Decimal
}

// CompositeSummary is the full nested structure combining all aggregates,
// breakdowns, and trends for one dataset. Its shape is a stable contract for
// every downstream consumer (chat, reports, visualizations). Statement
// pointers are nil when the corresponding calculator failed; the summary is
// still built from whatever remains.
type CompositeSummary struct {
	DataOverview      DataOverview
	IncomeTotal       decimal.Decimal
	ExpenseTotal      decimal.Decimal
	NetIncome         decimal.Decimal
	IncomeCategories  map[string]decimal.Decimal
	ExpenseCategories map[string]decimal.Decimal
	Assets            map[string]decimal.Decimal
	Liabilities       map[string]decimal.Decimal
	Equity            decimal.Decimal
	FinancialRatios   *FinancialRatios
	TimePeriods       []PeriodBucket
	IncomeStatement   *IncomeStatement
	BalanceSheet      *BalanceSheet
	CashFlow          *CashFlow
	Trends            *TrendSummary
}
