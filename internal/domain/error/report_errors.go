package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportType is returned when the requested report type is not
	// one of: income_statement, balance_sheet, cash_flow, financial_summary.
	ErrInvalidReportType = errors.New("invalid report type")

	// ErrNarrativeUnavailable is returned by the narrative collaborator when
	// it is not configured. Callers fall back to the deterministic generator.
	ErrNarrativeUnavailable = errors.New("narrative service is not configured")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportType ReportErrorCode = "RPT-010001"

	// Collaborator errors (02XXXX)
	ErrCodeNarrativeUnavailable ReportErrorCode = "RPT-020001"
	ErrCodeNarrativeFailed      ReportErrorCode = "RPT-020002"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
