package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// PeriodResponse represents the inclusive date bounds of an aggregate.
type PeriodResponse struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func toPeriodResponse(period entity.Period) PeriodResponse {
	return PeriodResponse{
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	}
}

// IncomeStatementResponse represents an income statement aggregate.
type IncomeStatementResponse struct {
	TotalIncome      float64            `json:"total_income"`
	TotalExpenses    float64            `json:"total_expenses"`
	NetIncome        float64            `json:"net_income"`
	IncomeBreakdown  map[string]float64 `json:"income_breakdown"`
	ExpenseBreakdown map[string]float64 `json:"expense_breakdown"`
	Period           PeriodResponse     `json:"period"`
}

// ToIncomeStatementResponse converts an IncomeStatement entity to its DTO.
func ToIncomeStatementResponse(stmt *entity.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		TotalIncome:      stmt.TotalIncome.InexactFloat64(),
		TotalExpenses:    stmt.TotalExpenses.InexactFloat64(),
		NetIncome:        stmt.NetIncome.InexactFloat64(),
		IncomeBreakdown:  toAmountMap(stmt.IncomeBreakdown),
		ExpenseBreakdown: toAmountMap(stmt.ExpenseBreakdown),
		Period:           toPeriodResponse(stmt.Period),
	}
}

// BalanceSheetResponse represents a balance sheet aggregate.
type BalanceSheetResponse struct {
	TotalAssets      float64            `json:"total_assets"`
	TotalLiabilities float64            `json:"total_liabilities"`
	TotalEquity      float64            `json:"total_equity"`
	Assets           map[string]float64 `json:"assets"`
	Liabilities      map[string]float64 `json:"liabilities"`
	AsOfDate         string             `json:"as_of_date"`
}

// ToBalanceSheetResponse converts a BalanceSheet entity to its DTO.
func ToBalanceSheetResponse(sheet *entity.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		TotalAssets:      sheet.TotalAssets.InexactFloat64(),
		TotalLiabilities: sheet.TotalLiabilities.InexactFloat64(),
		TotalEquity:      sheet.TotalEquity.InexactFloat64(),
		Assets:           toAmountMap(sheet.Assets),
		Liabilities:      toAmountMap(sheet.Liabilities),
		AsOfDate:         sheet.AsOfDate,
	}
}

// CashFlowResponse represents a cash flow aggregate.
type CashFlowResponse struct {
	OperatingCashFlow float64        `json:"operating_cash_flow"`
	InvestingCashFlow float64        `json:"investing_cash_flow"`
	FinancingCashFlow float64        `json:"financing_cash_flow"`
	NetCashFlow       float64        `json:"net_cash_flow"`
	Period            PeriodResponse `json:"period"`
}

// ToCashFlowResponse converts a CashFlow entity to its DTO.
func ToCashFlowResponse(flow *entity.CashFlow) CashFlowResponse {
	return CashFlowResponse{
		OperatingCashFlow: flow.OperatingCashFlow.InexactFloat64(),
		InvestingCashFlow: flow.InvestingCashFlow.InexactFloat64(),
		FinancingCashFlow: flow.FinancingCashFlow.InexactFloat64(),
		NetCashFlow:       flow.NetCashFlow.InexactFloat64(),
		Period:            toPeriodResponse(flow.Period),
	}
}

// RatiosResponse represents the five standard financial ratios.
type RatiosResponse struct {
	ProfitMargin     float64 `json:"profit_margin"`
	ReturnOnAssets   float64 `json:"return_on_assets"`
	ReturnOnEquity   float64 `json:"return_on_equity"`
	DebtToEquity     float64 `json:"debt_to_equity"`
	AssetToLiability float64 `json:"asset_to_liability"`
}

// ToRatiosResponse converts a FinancialRatios entity to its DTO.
func ToRatiosResponse(ratios *entity.FinancialRatios) RatiosResponse {
	return RatiosResponse{
		ProfitMargin:     ratios.ProfitMargin,
		ReturnOnAssets:   ratios.ReturnOnAssets,
		ReturnOnEquity:   ratios.ReturnOnEquity,
		DebtToEquity:     ratios.DebtToEquity,
		AssetToLiability: ratios.AssetToLiability,
	}
}

func toAmountMap(amounts map[string]decimal.Decimal) map[string]float64 {
	converted := make(map[string]float64, len(amounts))
	for name, amount := range amounts {
		converted[name] = amount.InexactFloat64()
	}
	return converted
}
