// Package dataset contains dataset ingestion use cases: CSV parsing,
// validation, normalization, and classification.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finbot/backend/internal/domain/error"
)

// Column names recognized in uploaded tables. Required columns must be
// present; optional columns enable finer-grained bucketing downstream.
const (
	ColumnDate            = "date"
	ColumnAmount          = "amount"
	ColumnDescription     = "description"
	ColumnCategory        = "category"
	ColumnSubcategory     = "subcategory"
	ColumnAccountType     = "account_type"
	ColumnTransactionType = "transaction_type"
)

// RequiredColumns are the columns every uploaded table must have.
var RequiredColumns = []string{ColumnDate, ColumnAmount, ColumnDescription}

// RawTable is an uploaded table before validation and normalization: a flat
// list of string cells keyed by lowercased column name.
type RawTable struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn reports whether the table carries the named column.
func (t *RawTable) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ParseCSV reads a CSV document into a RawTable. The first record is the
// header; header names are lowercased and trimmed. Columns outside the
// recognized schema are dropped.
func ParseCSV(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domainerror.NewDatasetError(
			domainerror.ErrCodeInvalidCSV,
			"file could not be parsed as CSV",
			fmt.Errorf("%w: %v", domainerror.ErrInvalidCSV, err),
		)
	}
	if len(records) == 0 {
		return &RawTable{}, nil
	}

	recognized := map[string]bool{
		ColumnDate:            true,
		ColumnAmount:          true,
		ColumnDescription:     true,
		ColumnCategory:        true,
		ColumnSubcategory:     true,
		ColumnAccountType:     true,
		ColumnTransactionType: true,
	}

	header := make([]string, len(records[0]))
	var columns []string
	for i, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		header[i] = name
		if recognized[name] {
			columns = append(columns, name)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, cell := range record {
			if i < len(header) && recognized[header[i]] {
				row[header[i]] = strings.TrimSpace(cell)
			}
		}
		rows = append(rows, row)
	}

	return &RawTable{Columns: columns, Rows: rows}, nil
}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006/01/02",
}

// parseDate coerces one date cell. ok is false for empty or unparseable
// cells.
func parseDate(cell string) (time.Time, bool) {
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount coerces one amount cell. ok is false for empty or unparseable
// cells.
func parseAmount(cell string) (decimal.Decimal, bool) {
	if cell == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
