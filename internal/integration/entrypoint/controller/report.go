package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/application/usecase/report"
	"github.com/finbot/backend/internal/domain/entity"
	"github.com/finbot/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report generation endpoints.
type ReportController struct {
	generateReportUseCase *report.GenerateReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(generateReportUseCase *report.GenerateReportUseCase) *ReportController {
	return &ReportController{
		generateReportUseCase: generateReportUseCase,
	}
}

// Generate handles POST /datasets/:id/reports requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	var request dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	startDate, ok := parseDateBody(ctx, "start_date", request.StartDate)
	if !ok {
		return
	}
	endDate, ok := parseDateBody(ctx, "end_date", request.EndDate)
	if !ok {
		return
	}

	output, err := c.generateReportUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		DatasetID: datasetID,
		Type:      entity.ReportType(request.Type),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// parseDateBody parses an optional YYYY-MM-DD date from the request body,
// writing a 400 response on a malformed value.
func parseDateBody(ctx *gin.Context, name, raw string) (*time.Time, bool) {
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
