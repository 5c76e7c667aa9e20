package error

import "errors"

// Statement calculator errors. A calculator that cannot run returns one of
// these in place of its aggregate; sibling calculators still run and the
// summary aggregator surfaces whatever partial summary it can build.
var (
	// ErrMissingAmountColumn is returned when the table has no amount column.
	ErrMissingAmountColumn = errors.New("data format does not contain required column: amount")

	// ErrMissingCategoryColumn is returned when the table has no category
	// column after classification.
	ErrMissingCategoryColumn = errors.New("data format does not contain required column: category")
)

// StatementErrorCode defines error codes for statement computation errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Computation errors (01XXXX)
	ErrCodeMissingAmount   StatementErrorCode = "STM-010001"
	ErrCodeMissingCategory StatementErrorCode = "STM-010002"
)

// ComputationError represents a statement computation error with code and
// message.
type ComputationError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ComputationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ComputationError) Unwrap() error {
	return e.Err
}

// NewComputationError creates a new ComputationError with the given code and
// message.
func NewComputationError(code StatementErrorCode, message string, err error) *ComputationError {
	return &ComputationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
