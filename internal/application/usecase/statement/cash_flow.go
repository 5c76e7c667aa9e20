package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// Transaction-type keyword sets for cash flow bucketing, matched
// case-insensitively against the transaction_type column.
var (
	operatingTypes = []string{"revenue", "expense", "sale", "purchase", "operating"}
	investingTypes = []string{"investment", "asset purchase", "asset sale", "investing"}
	financingTypes = []string{"loan", "dividend", "equity", "financing"}
)

func matchesType(transactionType string, types []string) bool {
	lowered := strings.ToLower(transactionType)
	for _, name := range types {
		if lowered == name {
			return true
		}
	}
	return false
}

// ComputeCashFlow reduces the dataset to a cash flow statement over
// [start, end] inclusive. When the transaction_type column exists, rows
// bucket into operating, investing, and financing flows by the fixed
// keyword sets; otherwise operating cash flow is classified income minus
// expenses and the other two flows are zero. Net cash flow is the sum of
// the three.
func ComputeCashFlow(ds *entity.Dataset, start, end *time.Time) (*entity.CashFlow, error) {
	if err := requireAmount(ds); err != nil {
		return nil, err
	}

	operating := decimal.Zero
	investing := decimal.Zero
	financing := decimal.Zero

	if ds.Columns.TransactionType {
		for _, row := range filterByDateRange(ds.Rows, start, end) {
			switch {
			case matchesType(row.TransactionType, operatingTypes):
				operating = operating.Add(row.Amount)
			case matchesType(row.TransactionType, investingTypes):
				investing = investing.Add(row.Amount)
			case matchesType(row.TransactionType, financingTypes):
				financing = financing.Add(row.Amount)
			}
		}
	} else {
		data := ensureClassified(ds)
		if data.Columns.Category {
			income := decimal.Zero
			expenses := decimal.Zero
			for _, row := range filterByDateRange(data.Rows, start, end) {
				switch row.Category {
				case entity.CategoryIncome:
					income = income.Add(row.Amount)
				case entity.CategoryExpense:
					expenses = expenses.Add(row.Amount)
				}
			}
			operating = income.Sub(expenses.Abs())
		}
	}

	return &entity.CashFlow{
		OperatingCashFlow: operating,
		InvestingCashFlow: investing,
		FinancingCashFlow: financing,
		NetCashFlow:       operating.Add(investing).Add(financing),
		Period:            periodOf(start, end),
	}, nil
}
