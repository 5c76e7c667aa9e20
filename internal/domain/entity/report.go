package entity

// ReportType identifies which financial report to generate. Dispatch over
// the type is explicit; an unknown value is rejected up front.
type ReportType string

const (
	ReportIncomeStatement  ReportType = "income_statement"
	ReportBalanceSheet     ReportType = "balance_sheet"
	ReportCashFlow         ReportType = "cash_flow"
	ReportFinancialSummary ReportType = "financial_summary"
)

// ValidReportType reports whether t names a known report type.
func ValidReportType(t ReportType) bool {
	switch t {
	case ReportIncomeStatement, ReportBalanceSheet, ReportCashFlow, ReportFinancialSummary:
		return true
	}
	return false
}

// ReportSection is one titled block of narrative within a report.
type ReportSection struct {
	Heading string
	Content string
}

// ReportContent is the narrative half of a generated report. It may come
// from the narrative collaborator or from the deterministic fallback
// generator; the numbers in the paired aggregate are authoritative either
// way.
type ReportContent struct {
	Title           string
	Summary         string
	Sections        []ReportSection
	Recommendations []string
}

// Report pairs one statement aggregate with its narrative content. Exactly
// one of the aggregate pointers is set, matching Type, except for
// financial_summary which carries the composite summary.
type Report struct {
	Type            ReportType
	Period          string // human-readable period or as-of label
	IncomeStatement *IncomeStatement
	BalanceSheet    *BalanceSheet
	CashFlow        *CashFlow
	Summary         *CompositeSummary
	Content         ReportContent
}

// Insights is the analysis block produced for a dataset: observations the
// narrative collaborator (or the deterministic fallback) derives from the
// composite summary.
type Insights struct {
	KeyInsights     []string
	Trends          []string
	Recommendations []string
	Risks           []string
}
