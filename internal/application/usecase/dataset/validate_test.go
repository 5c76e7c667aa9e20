package dataset

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/finbot/backend/internal/domain/error"
)

func TestParseCSV(t *testing.T) {
	input := "Date,Amount,Description,Notes\n2023-01-01,100.50,Sale,ignore me\n"

	table, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(table.Columns) != 3 {
		t.Fatalf("expected 3 recognized columns, got %v", table.Columns)
	}
	if !table.HasColumn(ColumnDate) || !table.HasColumn(ColumnAmount) || !table.HasColumn(ColumnDescription) {
		t.Errorf("required columns not recognized: %v", table.Columns)
	}
	if table.HasColumn("notes") {
		t.Errorf("unrecognized column should be dropped")
	}

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if got := table.Rows[0][ColumnAmount]; got != "100.50" {
		t.Errorf("expected amount cell 100.50, got %q", got)
	}
	if _, ok := table.Rows[0]["notes"]; ok {
		t.Errorf("unrecognized cell should not be kept")
	}
}

func TestParseCSVInvalid(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("a,b\n\"unterminated"))

	var datasetErr *domainerror.DatasetError
	if !errors.As(err, &datasetErr) {
		t.Fatalf("expected DatasetError, got %v", err)
	}
	if datasetErr.Code != domainerror.ErrCodeInvalidCSV {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCSV, datasetErr.Code)
	}
	if !errors.Is(err, domainerror.ErrInvalidCSV) {
		t.Errorf("expected error to wrap ErrInvalidCSV, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedCode domainerror.DatasetErrorCode
		expectedErr  error
		messagePart  string
	}{
		{
			name:         "missing required columns",
			input:        "date,description\n2023-01-01,Sale\n",
			expectedCode: domainerror.ErrCodeMissingColumns,
			expectedErr:  domainerror.ErrMissingRequiredColumns,
			messagePart:  "Missing required columns: amount",
		},
		{
			name:         "all required columns missing",
			input:        "notes\nhello\n",
			expectedCode: domainerror.ErrCodeMissingColumns,
			expectedErr:  domainerror.ErrMissingRequiredColumns,
			messagePart:  "date, amount, description",
		},
		{
			name:         "empty table",
			input:        "date,amount,description\n",
			expectedCode: domainerror.ErrCodeEmptyDataset,
			expectedErr:  domainerror.ErrEmptyDataset,
			messagePart:  "contains no data",
		},
		{
			name:         "unparseable date",
			input:        "date,amount,description\nnot-a-date,100,Sale\n",
			expectedCode: domainerror.ErrCodeDateParse,
			expectedErr:  domainerror.ErrDateNotParseable,
			messagePart:  "Date column could not be parsed",
		},
		{
			name:         "unparseable amount",
			input:        "date,amount,description\n2023-01-01,abc,Sale\n",
			expectedCode: domainerror.ErrCodeAmountParse,
			expectedErr:  domainerror.ErrAmountNotParseable,
			messagePart:  "Amount column could not be converted",
		},
		{
			name:         "missing date values",
			input:        "date,amount,description\n2023-01-01,100,Sale\n,200,Other\n",
			expectedCode: domainerror.ErrCodeMissingValues,
			expectedErr:  domainerror.ErrMissingValues,
			messagePart:  "date column contains 1 missing values",
		},
		{
			name:         "missing amount values",
			input:        "date,amount,description\n2023-01-01,,Sale\n",
			expectedCode: domainerror.ErrCodeMissingValues,
			expectedErr:  domainerror.ErrMissingValues,
			messagePart:  "amount column contains 1 missing values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			err = Validate(table)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			var datasetErr *domainerror.DatasetError
			if !errors.As(err, &datasetErr) {
				t.Fatalf("expected DatasetError, got %v", err)
			}
			if datasetErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, datasetErr.Code)
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error chain to contain %v", tt.expectedErr)
			}
			if !strings.Contains(datasetErr.Message, tt.messagePart) {
				t.Errorf("expected message to contain %q, got %q", tt.messagePart, datasetErr.Message)
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	inputs := map[string]string{
		"minimal":          "date,amount,description\n2023-01-01,100,Sale\n",
		"optional columns": "date,amount,description,category,subcategory,account_type,transaction_type\n2023-01-01,100,Sale,Income,Product,Bank Account,Revenue\n",
		"negative amounts": "date,amount,description\n2023-01-01,-42.50,Rent\n",
		"slash dates":      "date,amount,description\n01/15/2023,100,Sale\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			table, err := ParseCSV(strings.NewReader(input))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if err := Validate(table); err != nil {
				t.Errorf("expected valid table, got %v", err)
			}
		})
	}
}
