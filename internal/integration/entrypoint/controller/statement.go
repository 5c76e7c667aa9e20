package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/application/usecase/statement"
	"github.com/finbot/backend/internal/integration/entrypoint/dto"
)

// StatementController handles the four statement calculator endpoints.
type StatementController struct {
	getIncomeStatementUseCase *statement.GetIncomeStatementUseCase
	getBalanceSheetUseCase    *statement.GetBalanceSheetUseCase
	getCashFlowUseCase        *statement.GetCashFlowUseCase
	getRatiosUseCase          *statement.GetRatiosUseCase
}

// NewStatementController creates a new statement controller instance.
func NewStatementController(
	getIncomeStatementUseCase *statement.GetIncomeStatementUseCase,
	getBalanceSheetUseCase *statement.GetBalanceSheetUseCase,
	getCashFlowUseCase *statement.GetCashFlowUseCase,
	getRatiosUseCase *statement.GetRatiosUseCase,
) *StatementController {
	return &StatementController{
		getIncomeStatementUseCase: getIncomeStatementUseCase,
		getBalanceSheetUseCase:    getBalanceSheetUseCase,
		getCashFlowUseCase:        getCashFlowUseCase,
		getRatiosUseCase:          getRatiosUseCase,
	}
}

// GetIncomeStatement handles GET /datasets/:id/statements/income requests.
// Optional start_date and end_date query parameters bound the period.
func (c *StatementController) GetIncomeStatement(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}
	startDate, endDate, ok := parseDateRangeQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getIncomeStatementUseCase.Execute(ctx.Request.Context(), statement.GetIncomeStatementInput{
		DatasetID: datasetID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeStatementResponse(output))
}

// GetBalanceSheet handles GET /datasets/:id/statements/balance requests.
// An optional as_of_date query parameter sets the snapshot date.
func (c *StatementController) GetBalanceSheet(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}
	asOfDate, ok := parseDateQuery(ctx, "as_of_date")
	if !ok {
		return
	}

	output, err := c.getBalanceSheetUseCase.Execute(ctx.Request.Context(), statement.GetBalanceSheetInput{
		DatasetID: datasetID,
		AsOfDate:  asOfDate,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceSheetResponse(output))
}

// GetCashFlow handles GET /datasets/:id/statements/cashflow requests.
func (c *StatementController) GetCashFlow(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}
	startDate, endDate, ok := parseDateRangeQuery(ctx)
	if !ok {
		return
	}

	output, err := c.getCashFlowUseCase.Execute(ctx.Request.Context(), statement.GetCashFlowInput{
		DatasetID: datasetID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowResponse(output))
}

// GetRatios handles GET /datasets/:id/statements/ratios requests. Ratios
// always cover the full dataset, so there are no date parameters.
func (c *StatementController) GetRatios(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	output, err := c.getRatiosUseCase.Execute(ctx.Request.Context(), statement.GetRatiosInput{
		DatasetID: datasetID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRatiosResponse(output))
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter, writing a 400
// response on a malformed value.
func parseDateQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &parsed, true
}

func parseDateRangeQuery(ctx *gin.Context) (start, end *time.Time, ok bool) {
	start, ok = parseDateQuery(ctx, "start_date")
	if !ok {
		return nil, nil, false
	}
	end, ok = parseDateQuery(ctx, "end_date")
	if !ok {
		return nil, nil, false
	}
	return start, end, true
}
