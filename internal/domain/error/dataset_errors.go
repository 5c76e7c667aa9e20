// Package error defines domain-specific errors for the FinBot backend.
package error

import "errors"

// Dataset domain errors.
var (
	// ErrMissingRequiredColumns is returned when the uploaded table lacks one
	// of the required columns (date, amount, description).
	ErrMissingRequiredColumns = errors.New("missing required columns")

	// ErrDateNotParseable is returned when the date column cannot be parsed.
	ErrDateNotParseable = errors.New("date column could not be parsed")

	// ErrAmountNotParseable is returned when the amount column cannot be
	// converted to numbers.
	ErrAmountNotParseable = errors.New("amount column could not be converted to numbers")

	// ErrEmptyDataset is returned when the uploaded table contains no rows.
	ErrEmptyDataset = errors.New("the uploaded file contains no data")

	// ErrMissingValues is returned when date or amount contains missing values
	// after coercion.
	ErrMissingValues = errors.New("essential column contains missing values")

	// ErrInvalidCSV is returned when the uploaded file is not parseable CSV.
	ErrInvalidCSV = errors.New("file could not be parsed as CSV")

	// ErrDatasetNotFound is returned when no dataset exists for the given ID.
	ErrDatasetNotFound = errors.New("dataset not found")
)

// DatasetErrorCode defines error codes for dataset errors.
// Format: DST-XXYYYY where XX is category and YYYY is specific error.
type DatasetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingColumns DatasetErrorCode = "DST-010001"
	ErrCodeDateParse      DatasetErrorCode = "DST-010002"
	ErrCodeAmountParse    DatasetErrorCode = "DST-010003"
	ErrCodeEmptyDataset   DatasetErrorCode = "DST-010004"
	ErrCodeMissingValues  DatasetErrorCode = "DST-010005"
	ErrCodeInvalidCSV     DatasetErrorCode = "DST-010006"

	// Lookup errors (02XXXX)
	ErrCodeDatasetNotFound DatasetErrorCode = "DST-020001"

	// Internal errors (99XXXX)
	ErrCodeDatasetInternalError DatasetErrorCode = "DST-990001"
)

// DatasetError represents a dataset error with code and message.
type DatasetError struct {
	Code    DatasetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewDatasetError creates a new DatasetError with the given code and message.
func NewDatasetError(code DatasetErrorCode, message string, err error) *DatasetError {
	return &DatasetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
