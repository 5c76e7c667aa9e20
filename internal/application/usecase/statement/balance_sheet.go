package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// Account-type keyword sets for balance sheet bucketing, matched
// case-insensitively against the account_type column.
var (
	assetAccounts     = []string{"cash", "bank", "investment", "receivable", "asset"}
	liabilityAccounts = []string{"loan", "credit", "payable", "debt", "liability"}
)

func matchesAccount(accountType string, accounts []string) bool {
	lowered := strings.ToLower(accountType)
	for _, name := range accounts {
		if lowered == name {
			return true
		}
	}
	return false
}

// ComputeBalanceSheet reduces the dataset to a balance sheet as of the
// given date (nil = whole history, labeled with today's date). When the
// account_type column exists, rows bucket into assets and liabilities by
// the fixed keyword sets; otherwise positive amounts are assets and
// negative amounts liabilities. Equity is always assets minus liabilities.
func ComputeBalanceSheet(ds *entity.Dataset, asOf *time.Time) (*entity.BalanceSheet, error) {
	if err := requireAmount(ds); err != nil {
		return nil, err
	}

	rows := filterByDateRange(ds.Rows, nil, asOf)

	assets := decimal.Zero
	liabilities := decimal.Zero
	assetNames := make(map[string]decimal.Decimal)
	liabilityNames := make(map[string]decimal.Decimal)

	if ds.Columns.AccountType {
		for _, row := range rows {
			switch {
			case matchesAccount(row.AccountType, assetAccounts):
				assets = assets.Add(row.Amount)
				assetNames[row.AccountType] = assetNames[row.AccountType].Add(row.Amount)
			case matchesAccount(row.AccountType, liabilityAccounts):
				liabilities = liabilities.Add(row.Amount)
				liabilityNames[row.AccountType] = liabilityNames[row.AccountType].Add(row.Amount)
			}
		}
		liabilities = liabilities.Abs()
		for name, total := range liabilityNames {
			liabilityNames[name] = total.Abs()
		}
	} else {
		// Simplified split: positive balances are assets, negative are
		// liabilities.
		for _, row := range rows {
			switch row.Amount.Sign() {
			case 1:
				assets = assets.Add(row.Amount)
			case -1:
				liabilities = liabilities.Add(row.Amount)
			}
		}
		liabilities = liabilities.Abs()
		if assets.Sign() != 0 {
			assetNames["General Assets"] = assets
		}
		if liabilities.Sign() != 0 {
			liabilityNames["General Liabilities"] = liabilities
		}
	}

	asOfDate := time.Now().Format("2006-01-02")
	if asOf != nil {
		asOfDate = asOf.Format("2006-01-02")
	}

	return &entity.BalanceSheet{
		TotalAssets:      assets,
		TotalLiabilities: liabilities,
		TotalEquity:      assets.Sub(liabilities),
		Assets:           assetNames,
		Liabilities:      liabilityNames,
		AsOfDate:         asOfDate,
	}, nil
}
