package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/application/usecase/statement"
	"github.com/finbot/backend/internal/application/usecase/summary"
	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
)

// GenerateReportInput represents the input for generating a report.
// StartDate/EndDate bound the reporting period; for a balance sheet EndDate
// doubles as the as-of date.
type GenerateReportInput struct {
	DatasetID uuid.UUID
	Type      entity.ReportType
	StartDate *time.Time
	EndDate   *time.Time
}

// GenerateReportOutput represents the output of generating a report.
type GenerateReportOutput struct {
	Report    *entity.Report
	FromCache bool
	// RuleBased is true when the deterministic generator produced the
	// narrative content.
	RuleBased bool
}

// GenerateReportUseCase produces one of the four financial reports, pairing
// the recomputed aggregate with narrative content. Generated reports are
// cached per dataset, type, and date range.
type GenerateReportUseCase struct {
	datasetRepo adapter.DatasetRepository
	narrative   adapter.NarrativeService
	cache       adapter.ReportCache
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	datasetRepo adapter.DatasetRepository,
	narrative adapter.NarrativeService,
	cache adapter.ReportCache,
) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		datasetRepo: datasetRepo,
		narrative:   narrative,
		cache:       cache,
	}
}

// Execute generates the requested report.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	if !entity.ValidReportType(input.Type) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			fmt.Sprintf("Invalid report type: %s", input.Type),
			domainerror.ErrInvalidReportType,
		)
	}

	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(input)
	if uc.cache != nil {
		cached, found, cacheErr := uc.cache.Get(ctx, key)
		if cacheErr != nil {
			slog.Warn("Report cache lookup failed", "key", key, "error", cacheErr)
		} else if found {
			return &GenerateReportOutput{Report: cached, FromCache: true}, nil
		}
	}

	rpt := &entity.Report{
		Type:   input.Type,
		Period: periodLabel(input),
	}

	switch input.Type {
	case entity.ReportIncomeStatement:
		rpt.IncomeStatement, err = statement.ComputeIncomeStatement(ds, input.StartDate, input.EndDate)
	case entity.ReportBalanceSheet:
		rpt.BalanceSheet, err = statement.ComputeBalanceSheet(ds, input.EndDate)
	case entity.ReportCashFlow:
		rpt.CashFlow, err = statement.ComputeCashFlow(ds, input.StartDate, input.EndDate)
	case entity.ReportFinancialSummary:
		rpt.Summary = summary.Summarize(filtered(ds, input.StartDate, input.EndDate))
	}
	if err != nil {
		return nil, err
	}

	// The narrative layer always works off the composite summary of the
	// filtered rows, whichever aggregate the report carries.
	composite := rpt.Summary
	if composite == nil {
		composite = summary.Summarize(filtered(ds, input.StartDate, input.EndDate))
	}

	content, ruleBased := uc.content(ctx, input.Type, composite)
	rpt.Content = *content

	if uc.cache != nil {
		if cacheErr := uc.cache.Set(ctx, key, rpt); cacheErr != nil {
			slog.Warn("Report cache store failed", "key", key, "error", cacheErr)
		}
	}

	return &GenerateReportOutput{Report: rpt, RuleBased: ruleBased}, nil
}

func (uc *GenerateReportUseCase) content(
	ctx context.Context,
	reportType entity.ReportType,
	composite *entity.CompositeSummary,
) (*entity.ReportContent, bool) {
	if uc.narrative != nil && uc.narrative.IsAvailable() {
		content, err := uc.narrative.GenerateReportContent(ctx, reportType, composite)
		if err == nil && content != nil {
			return content, false
		}
		if err != nil {
			slog.Warn("Narrative report content failed, using fallback", "type", reportType, "error", err)
		}
	}
	return FallbackReportContent(reportType, composite), true
}

// filtered returns a dataset view restricted to the inclusive date range.
func filtered(ds *entity.Dataset, start, end *time.Time) *entity.Dataset {
	if start == nil && end == nil {
		return ds
	}
	view := ds.Clone()
	rows := view.Rows[:0]
	for _, tx := range view.Rows {
		if start != nil && tx.Date.Before(*start) {
			continue
		}
		if end != nil && tx.Date.After(*end) {
			continue
		}
		rows = append(rows, tx)
	}
	view.Rows = rows
	return view
}

func cacheKey(input GenerateReportInput) string {
	startLabel, endLabel := "none", "none"
	if input.StartDate != nil {
		startLabel = input.StartDate.Format("2006-01-02")
	}
	if input.EndDate != nil {
		endLabel = input.EndDate.Format("2006-01-02")
	}
	return fmt.Sprintf("report:%s:%s:%s:%s", input.DatasetID, input.Type, startLabel, endLabel)
}

func periodLabel(input GenerateReportInput) string {
	if input.Type == entity.ReportBalanceSheet {
		asOf := time.Now().Format("2006-01-02")
		if input.EndDate != nil {
			asOf = input.EndDate.Format("2006-01-02")
		}
		return "As of " + asOf
	}
	startLabel, endLabel := "beginning", "latest"
	if input.StartDate != nil {
		startLabel = input.StartDate.Format("2006-01-02")
	}
	if input.EndDate != nil {
		endLabel = input.EndDate.Format("2006-01-02")
	}
	return startLabel + " to " + endLabel
}
