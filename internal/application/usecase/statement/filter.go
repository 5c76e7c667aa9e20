// Package statement contains the four statement calculators. Each is a pure
// reduction over a normalized dataset: it re-derives its aggregate from the
// rows it receives, mutates nothing, and returns an immutable snapshot of
// one filtered view.
package statement

import (
	"time"

	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
)

// filterByDateRange returns the rows inside [start, end] inclusive. A nil
// bound is unbounded on that side.
func filterByDateRange(rows []entity.Transaction, start, end *time.Time) []entity.Transaction {
	filtered := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		if start != nil && row.Date.Before(*start) {
			continue
		}
		if end != nil && row.Date.After(*end) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// periodOf formats the date bounds of a filtered view.
func periodOf(start, end *time.Time) entity.Period {
	var p entity.Period
	if start != nil {
		s := start.Format("2006-01-02")
		p.StartDate = &s
	}
	if end != nil {
		e := end.Format("2006-01-02")
		p.EndDate = &e
	}
	return p
}

// ensureClassified returns a classified view of the dataset. Datasets
// without a category column are classified on a clone when the sign-based
// rule can apply; a dataset lacking the columns classification needs is
// returned unchanged and the caller reports the missing column.
func ensureClassified(ds *entity.Dataset) *entity.Dataset {
	if ds.Columns.Category {
		return ds
	}
	if !ds.Columns.Amount || !ds.Columns.Description {
		return ds
	}
	clone := ds.Clone()
	for i := range clone.Rows {
		clone.Rows[i].Category = clone.Rows[i].Classify(false)
	}
	clone.Columns.Category = true
	return clone
}

// requireAmount returns the computation error for a dataset without an
// amount column.
func requireAmount(ds *entity.Dataset) error {
	if ds.Columns.Amount {
		return nil
	}
	return domainerror.NewComputationError(
		domainerror.ErrCodeMissingAmount,
		"data format does not contain required columns (amount)",
		domainerror.ErrMissingAmountColumn,
	)
}
