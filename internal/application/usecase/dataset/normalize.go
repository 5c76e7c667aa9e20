package dataset

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// Normalize turns a raw table into a typed dataset. The input is never
// mutated. Per-cell coercion failures are recovered, not propagated:
// unparseable amount cells become zero, missing text cells become empty
// strings, and rows whose date cannot be coerced are dropped (a calendar
// date has no zero-fill). Month, year, and month-year fields are derived
// from the date, and rows are sorted ascending by date with a stable sort,
// so normalizing an already-normalized table yields an identical table.
func Normalize(table *RawTable) *entity.Dataset {
	columns := entity.ColumnSet{
		Date:            table.HasColumn(ColumnDate),
		Amount:          table.HasColumn(ColumnAmount),
		Description:     table.HasColumn(ColumnDescription),
		Category:        table.HasColumn(ColumnCategory),
		Subcategory:     table.HasColumn(ColumnSubcategory),
		AccountType:     table.HasColumn(ColumnAccountType),
		TransactionType: table.HasColumn(ColumnTransactionType),
	}

	rows := make([]entity.Transaction, 0, len(table.Rows))
	for _, raw := range table.Rows {
		date, ok := parseDate(raw[ColumnDate])
		if !ok {
			continue
		}

		amount, ok := parseAmount(raw[ColumnAmount])
		if !ok {
			amount = decimal.Zero
		}

		rows = append(rows, entity.Transaction{
			Date:            date,
			Amount:          amount,
			Description:     raw[ColumnDescription],
			Category:        entity.Category(raw[ColumnCategory]),
			Subcategory:     raw[ColumnSubcategory],
			AccountType:     raw[ColumnAccountType],
			TransactionType: raw[ColumnTransactionType],
			Month:           int(date.Month()),
			Year:            date.Year(),
			MonthYear:       date.Format("2006-01"),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return entity.NewDataset(columns, rows)
}
