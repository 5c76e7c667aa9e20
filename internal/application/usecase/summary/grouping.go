// Package summary composes the statement calculators into the composite
// financial summary: overview statistics, category breakdowns, monthly
// buckets, and period-over-period trends.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// GroupingStrategy selects how category breakdowns are keyed. It is chosen
// once per dataset, not re-checked per row.
type GroupingStrategy string

const (
	// GroupBySubcategory keys breakdowns by the subcategory column.
	GroupBySubcategory GroupingStrategy = "subcategory"
	// GroupByDescription uses the description as a category proxy.
	GroupByDescription GroupingStrategy = "description"
	// GroupSingleBucket collapses everything into one general bucket.
	GroupSingleBucket GroupingStrategy = "single_bucket"
)

// Fallback bucket labels used by the single-bucket strategy.
const (
	generalIncomeLabel  = "General Income"
	generalExpenseLabel = "General Expenses"
)

// ChooseGrouping picks the breakdown strategy for a dataset: subcategory
// when the column exists, description when it carries any values, and a
// single general bucket otherwise.
func ChooseGrouping(ds *entity.Dataset) GroupingStrategy {
	if ds.Columns.Subcategory {
		return GroupBySubcategory
	}
	if ds.Columns.Description {
		for _, row := range ds.Rows {
			if row.Description != "" {
				return GroupByDescription
			}
		}
	}
	return GroupSingleBucket
}

// breakdown groups the amounts of rows in the given category. Expense
// breakdowns report absolute values. A zero total under the single-bucket
// strategy yields an empty map rather than a zero-valued bucket.
func breakdown(rows []entity.Transaction, category entity.Category, strategy GroupingStrategy, singleLabel string, absolute bool) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, row := range rows {
		if row.Category != category {
			continue
		}
		switch strategy {
		case GroupBySubcategory:
			result[row.Subcategory] = result[row.Subcategory].Add(row.Amount)
		case GroupByDescription:
			result[row.Description] = result[row.Description].Add(row.Amount)
		case GroupSingleBucket:
			total = total.Add(row.Amount)
		}
	}

	if strategy == GroupSingleBucket {
		if total.Sign() != 0 {
			if absolute {
				total = total.Abs()
			}
			result[singleLabel] = total
		}
		return result
	}

	if absolute {
		for name, amount := range result {
			result[name] = amount.Abs()
		}
	}
	return result
}
