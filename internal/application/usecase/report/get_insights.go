package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/application/usecase/summary"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetInsightsInput represents the input for generating insights.
type GetInsightsInput struct {
	DatasetID uuid.UUID
}

// GetInsightsOutput represents the output of generating insights.
type GetInsightsOutput struct {
	Insights  *entity.Insights
	RuleBased bool
}

// GetInsightsUseCase produces the insights block for a dataset, preferring
// the narrative collaborator and falling back to the deterministic analyzer.
type GetInsightsUseCase struct {
	datasetRepo adapter.DatasetRepository
	narrative   adapter.NarrativeService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(datasetRepo adapter.DatasetRepository, narrative adapter.NarrativeService) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		datasetRepo: datasetRepo,
		narrative:   narrative,
	}
}

// Execute generates insights for the dataset's composite summary.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	composite := summary.Summarize(ds)

	if uc.narrative != nil && uc.narrative.IsAvailable() {
		insights, narrErr := uc.narrative.AnalyzeInsights(ctx, composite)
		if narrErr == nil && insights != nil {
			return &GetInsightsOutput{Insights: insights}, nil
		}
		if narrErr != nil {
			slog.Warn("Narrative insights failed, using fallback", "error", narrErr)
		}
	}

	return &GetInsightsOutput{Insights: FallbackInsights(composite), RuleBased: true}, nil
}
