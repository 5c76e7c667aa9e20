package entity

import (
	"time"

	"github.com/google/uuid"
)

// ColumnSet records which columns were present in the uploaded table.
// Optional-column branching in the calculators keys off these flags instead
// of re-inspecting rows.
type ColumnSet struct {
	Date            bool
	Amount          bool
	Description     bool
	Category        bool
	Subcategory     bool
	AccountType     bool
	TransactionType bool
}

// Dataset is one uploaded, normalized transaction table. It is the unit of
// session state: every calculator derives its aggregate freshly from the
// dataset it receives, and nothing here is mutated after classification.
type Dataset struct {
	ID         uuid.UUID
	UploadedAt time.Time
	Columns    ColumnSet
	Rows       []Transaction
}

// NewDataset creates a dataset with a fresh ID and upload timestamp.
func NewDataset(columns ColumnSet, rows []Transaction) *Dataset {
	return &Dataset{
		ID:         uuid.New(),
		UploadedAt: time.Now().UTC(),
		Columns:    columns,
		Rows:       rows,
	}
}

// Clone returns a deep copy of the dataset. Callers that mutate rows (the
// classifier) work on a clone so the stored dataset stays immutable.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Transaction, len(d.Rows))
	copy(rows, d.Rows)
	return &Dataset{
		ID:         d.ID,
		UploadedAt: d.UploadedAt,
		Columns:    d.Columns,
		Rows:       rows,
	}
}

// DateRange returns the earliest and latest transaction dates, or ok=false
// for an empty dataset.
func (d *Dataset) DateRange() (min, max time.Time, ok bool) {
	if len(d.Rows) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = d.Rows[0].Date, d.Rows[0].Date
	for _, row := range d.Rows[1:] {
		if row.Date.Before(min) {
			min = row.Date
		}
		if row.Date.After(max) {
			max = row.Date
		}
	}
	return min, max, true
}
