package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
)

// ComputeIncomeStatement reduces the dataset to an income statement over
// [start, end] inclusive (nil bound = unbounded). Total expenses are
// reported as an absolute value; net income is income minus expenses.
// Breakdowns group by subcategory when the column exists and are empty
// mappings otherwise.
func ComputeIncomeStatement(ds *entity.Dataset, start, end *time.Time) (*entity.IncomeStatement, error) {
	if err := requireAmount(ds); err != nil {
		return nil, err
	}

	data := ensureClassified(ds)
	if !data.Columns.Category {
		return nil, domainerror.NewComputationError(
			domainerror.ErrCodeMissingCategory,
			"data format does not contain required columns (category)",
			domainerror.ErrMissingCategoryColumn,
		)
	}

	rows := filterByDateRange(data.Rows, start, end)

	income := decimal.Zero
	expenses := decimal.Zero
	incomeBreakdown := make(map[string]decimal.Decimal)
	expenseBreakdown := make(map[string]decimal.Decimal)

	for _, row := range rows {
		switch row.Category {
		case entity.CategoryIncome:
			income = income.Add(row.Amount)
			if data.Columns.Subcategory {
				incomeBreakdown[row.Subcategory] = incomeBreakdown[row.Subcategory].Add(row.Amount)
			}
		case entity.CategoryExpense:
			expenses = expenses.Add(row.Amount)
			if data.Columns.Subcategory {
				expenseBreakdown[row.Subcategory] = expenseBreakdown[row.Subcategory].Add(row.Amount)
			}
		}
	}

	expenses = expenses.Abs()
	for name, total := range expenseBreakdown {
		expenseBreakdown[name] = total.Abs()
	}

	return &entity.IncomeStatement{
		TotalIncome:      income,
		TotalExpenses:    expenses,
		NetIncome:        income.Sub(expenses),
		IncomeBreakdown:  incomeBreakdown,
		ExpenseBreakdown: expenseBreakdown,
		Period:           periodOf(start, end),
	}, nil
}
