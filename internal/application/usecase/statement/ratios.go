package statement

import (
	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// safeRatio divides numerator by denominator as floats, returning 0 for a
// zero or non-positive denominator. Ratios never raise and never return
// infinity.
func safeRatio(numerator, denominator decimal.Decimal) float64 {
	if denominator.Sign() <= 0 {
		return 0
	}
	return numerator.InexactFloat64() / denominator.InexactFloat64()
}

// ComputeRatios derives the five standard financial ratios from the income
// statement and balance sheet over the full, unfiltered dataset. Ratios are
// never date-scoped independently.
func ComputeRatios(ds *entity.Dataset) (*entity.FinancialRatios, error) {
	incomeStatement, err := ComputeIncomeStatement(ds, nil, nil)
	if err != nil {
		return nil, err
	}
	balanceSheet, err := ComputeBalanceSheet(ds, nil)
	if err != nil {
		return nil, err
	}

	return &entity.FinancialRatios{
		ProfitMargin:     safeRatio(incomeStatement.NetIncome, incomeStatement.TotalIncome),
		ReturnOnAssets:   safeRatio(incomeStatement.NetIncome, balanceSheet.TotalAssets),
		ReturnOnEquity:   safeRatio(incomeStatement.NetIncome, balanceSheet.TotalEquity),
		DebtToEquity:     safeRatio(balanceSheet.TotalLiabilities, balanceSheet.TotalEquity),
		AssetToLiability: safeRatio(balanceSheet.TotalAssets, balanceSheet.TotalLiabilities),
	}, nil
}
