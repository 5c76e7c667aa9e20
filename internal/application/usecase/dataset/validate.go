package dataset

import (
	"fmt"
	"strings"

	domainerror "github.com/finbot/backend/internal/domain/error"
)

// Validate checks that the uploaded table has the required columns and that
// they are coercible. It fails closed: the first problem found is returned
// as a coded error with a human-readable message naming the offending
// column(s). Validation never mutates the input; a nil return means the
// table is safe to normalize.
func Validate(table *RawTable) error {
	var missing []string
	for _, col := range RequiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return domainerror.NewDatasetError(
			domainerror.ErrCodeMissingColumns,
			fmt.Sprintf("Missing required columns: %s", strings.Join(missing, ", ")),
			domainerror.ErrMissingRequiredColumns,
		)
	}

	if len(table.Rows) == 0 {
		return domainerror.NewDatasetError(
			domainerror.ErrCodeEmptyDataset,
			"The uploaded file contains no data.",
			domainerror.ErrEmptyDataset,
		)
	}

	dateMissing := 0
	for _, row := range table.Rows {
		cell := row[ColumnDate]
		if cell == "" {
			dateMissing++
			continue
		}
		if _, ok := parseDate(cell); !ok {
			return domainerror.NewDatasetError(
				domainerror.ErrCodeDateParse,
				"Date column could not be parsed. Please ensure it's in a valid date format (e.g., YYYY-MM-DD).",
				domainerror.ErrDateNotParseable,
			)
		}
	}

	amountMissing := 0
	for _, row := range table.Rows {
		cell := row[ColumnAmount]
		if cell == "" {
			amountMissing++
			continue
		}
		if _, ok := parseAmount(cell); !ok {
			return domainerror.NewDatasetError(
				domainerror.ErrCodeAmountParse,
				"Amount column could not be converted to numbers. Please ensure it contains valid numeric values.",
				domainerror.ErrAmountNotParseable,
			)
		}
	}

	if dateMissing > 0 {
		return domainerror.NewDatasetError(
			domainerror.ErrCodeMissingValues,
			fmt.Sprintf("The date column contains %d missing values. Please fix these before uploading.", dateMissing),
			domainerror.ErrMissingValues,
		)
	}
	if amountMissing > 0 {
		return domainerror.NewDatasetError(
			domainerror.ErrCodeMissingValues,
			fmt.Sprintf("The amount column contains %d missing values. Please fix these before uploading.", amountMissing),
			domainerror.ErrMissingValues,
		)
	}

	return nil
}
