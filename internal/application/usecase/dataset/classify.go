package dataset

import (
	"github.com/finbot/backend/internal/domain/entity"
)

// Classify assigns every row a category in {Income, Expense, Unknown}. A
// pre-supplied category is kept as-is; otherwise a positive amount is
// Income, a negative amount is Expense, and a zero amount is Unknown.
// Classification ignores the description in this default path. The input
// dataset is not mutated; the returned clone reports the category column as
// present. Calling Classify on an already-classified dataset is a no-op on
// the row values.
func Classify(ds *entity.Dataset) *entity.Dataset {
	result := ds.Clone()
	for i := range result.Rows {
		result.Rows[i].Category = result.Rows[i].Classify(result.Columns.Category)
	}
	result.Columns.Category = true
	return result
}
