package dto

import (
	"github.com/finbot/backend/internal/domain/entity"
)

// SummaryResponse represents the full composite summary. The field names
// are a stable contract consumed by report, chat, and visualization
// clients. Unbounded percentage changes serialize as null.
type SummaryResponse struct {
	DataOverview      DataOverviewResponse     `json:"data_overview"`
	IncomeTotal       float64                  `json:"income_total"`
	ExpenseTotal      float64                  `json:"expense_total"`
	NetIncome         float64                  `json:"net_income"`
	IncomeCategories  map[string]float64       `json:"income_categories"`
	ExpenseCategories map[string]float64       `json:"expense_categories"`
	Assets            map[string]float64       `json:"assets"`
	Liabilities       map[string]float64       `json:"liabilities"`
	Equity            float64                  `json:"equity"`
	FinancialRatios   *RatiosResponse          `json:"financial_ratios,omitempty"`
	TimePeriods       []PeriodBucketResponse   `json:"time_periods"`
	IncomeStatement   *IncomeStatementResponse `json:"income_statement,omitempty"`
	BalanceSheet      *BalanceSheetResponse    `json:"balance_sheet,omitempty"`
	CashFlow          *CashFlowResponse        `json:"cash_flow,omitempty"`
	Trends            *TrendSummaryResponse    `json:"trends,omitempty"`
}

// DataOverviewResponse represents the basic dataset statistics.
type DataOverviewResponse struct {
	TransactionCount   int             `json:"transaction_count"`
	DateRange          DateRangeBounds `json:"date_range"`
	AverageTransaction float64         `json:"average_transaction"`
}

// DateRangeBounds represents the dataset's date boundaries.
type DateRangeBounds struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// PeriodBucketResponse represents one monthly bucket. Change fields are
// absent on the chronologically first bucket.
type PeriodBucketResponse struct {
	Period            string             `json:"period"`
	Income            float64            `json:"income"`
	Expense           float64            `json:"expense"`
	Net               float64            `json:"net"`
	IncomeCategories  map[string]float64 `json:"income_categories"`
	ExpenseCategories map[string]float64 `json:"expense_categories"`

	IncomeChange     *float64        `json:"income_change,omitempty"`
	IncomeChangePct  *entity.Percent `json:"income_change_pct,omitempty"`
	ExpenseChange    *float64        `json:"expense_change,omitempty"`
	ExpenseChangePct *entity.Percent `json:"expense_change_pct,omitempty"`
	NetChange        *float64        `json:"net_change,omitempty"`
	NetChangePct     *entity.Percent `json:"net_change_pct,omitempty"`
}

// TrendSummaryResponse represents the first-vs-last overall trend block.
type TrendSummaryResponse struct {
	PeriodCount      int            `json:"period_count"`
	StartPeriod      string         `json:"start_period"`
	EndPeriod        string         `json:"end_period"`
	IncomeChange     float64        `json:"income_change"`
	IncomeChangePct  entity.Percent `json:"income_change_pct"`
	ExpenseChange    float64        `json:"expense_change"`
	ExpenseChangePct entity.Percent `json:"expense_change_pct"`
	NetChange        float64        `json:"net_change"`
	NetChangePct     entity.Percent `json:"net_change_pct"`
	IncomeTrend      string         `json:"income_trend"`
	ExpenseTrend     string         `json:"expense_trend"`
	NetTrend         string         `json:"net_trend"`
}

// ToSummaryResponse converts a CompositeSummary entity to its DTO.
func ToSummaryResponse(summary *entity.CompositeSummary) SummaryResponse {
	response := SummaryResponse{
		DataOverview: DataOverviewResponse{
			TransactionCount: summary.DataOverview.TransactionCount,
			DateRange: DateRangeBounds{
				Start: summary.DataOverview.DateRangeStart,
				End:   summary.DataOverview.DateRangeEnd,
			},
			AverageTransaction: summary.DataOverview.AverageTransaction.InexactFloat64(),
		},
		IncomeTotal:       summary.IncomeTotal.InexactFloat64(),
		ExpenseTotal:      summary.ExpenseTotal.InexactFloat64(),
		NetIncome:         summary.NetIncome.InexactFloat64(),
		IncomeCategories:  toAmountMap(summary.IncomeCategories),
		ExpenseCategories: toAmountMap(summary.ExpenseCategories),
		Assets:            toAmountMap(summary.Assets),
		Liabilities:       toAmountMap(summary.Liabilities),
		Equity:            summary.Equity.InexactFloat64(),
		TimePeriods:       make([]PeriodBucketResponse, len(summary.TimePeriods)),
	}

	if summary.FinancialRatios != nil {
		ratios := ToRatiosResponse(summary.FinancialRatios)
		response.FinancialRatios = &ratios
	}
	if summary.IncomeStatement != nil {
		stmt := ToIncomeStatementResponse(summary.IncomeStatement)
		response.IncomeStatement = &stmt
	}
	if summary.BalanceSheet != nil {
		sheet := ToBalanceSheetResponse(summary.BalanceSheet)
		response.BalanceSheet = &sheet
	}
	if summary.CashFlow != nil {
		flow := ToCashFlowResponse(summary.CashFlow)
		response.CashFlow = &flow
	}
	if summary.Trends != nil {
		response.Trends = &TrendSummaryResponse{
			PeriodCount:      summary.Trends.PeriodCount,
			StartPeriod:      summary.Trends.StartPeriod,
			EndPeriod:        summary.Trends.EndPeriod,
			IncomeChange:     summary.Trends.IncomeChange.InexactFloat64(),
			IncomeChangePct:  summary.Trends.IncomeChangePct,
			ExpenseChange:    summary.Trends.ExpenseChange.InexactFloat64(),
			ExpenseChangePct: summary.Trends.ExpenseChangePct,
			NetChange:        summary.Trends.NetChange.InexactFloat64(),
			NetChangePct:     summary.Trends.NetChangePct,
			IncomeTrend:      string(summary.Trends.IncomeTrend),
			ExpenseTrend:     string(summary.Trends.ExpenseTrend),
			NetTrend:         string(summary.Trends.NetTrend),
		}
	}

	for i, bucket := range summary.TimePeriods {
		response.TimePeriods[i] = toPeriodBucketResponse(bucket)
	}

	return response
}

func toPeriodBucketResponse(bucket entity.PeriodBucket) PeriodBucketResponse {
	response := PeriodBucketResponse{
		Period:            bucket.Period,
		Income:            bucket.Income.InexactFloat64(),
		Expense:           bucket.Expense.InexactFloat64(),
		Net:               bucket.Net.InexactFloat64(),
		IncomeCategories:  toAmountMap(bucket.IncomeCategories),
		ExpenseCategories: toAmountMap(bucket.ExpenseCategories),
	}

	if bucket.Delta != nil {
		incomeChange := bucket.Delta.IncomeChange.InexactFloat64()
		expenseChange := bucket.Delta.ExpenseChange.InexactFloat64()
		netChange := bucket.Delta.NetChange.InexactFloat64()

		response.IncomeChange = &incomeChange
		response.IncomeChangePct = &bucket.Delta.IncomeChangePct
		response.ExpenseChange = &expenseChange
		response.ExpenseChangePct = &bucket.Delta.ExpenseChangePct
		response.NetChange = &netChange
		response.NetChangePct = &bucket.Delta.NetChangePct
	}

	return response
}
