package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/application/usecase/report"
	"github.com/finbot/backend/internal/application/usecase/summary"
	"github.com/finbot/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the composite summary and insights endpoints.
type SummaryController struct {
	getSummaryUseCase  *summary.GetSummaryUseCase
	getInsightsUseCase *report.GetInsightsUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	getSummaryUseCase *summary.GetSummaryUseCase,
	getInsightsUseCase *report.GetInsightsUseCase,
) *SummaryController {
	return &SummaryController{
		getSummaryUseCase:  getSummaryUseCase,
		getInsightsUseCase: getInsightsUseCase,
	}
}

// GetSummary handles GET /datasets/:id/summary requests.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{
		DatasetID: datasetID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetInsights handles GET /datasets/:id/insights requests.
func (c *SummaryController) GetInsights(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	output, err := c.getInsightsUseCase.Execute(ctx.Request.Context(), report.GetInsightsInput{
		DatasetID: datasetID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output.Insights, output.RuleBased))
}
