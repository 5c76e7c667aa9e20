package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for building a composite summary.
type GetSummaryInput struct {
	DatasetID uuid.UUID
}

// GetSummaryUseCase loads a dataset and builds its composite financial
// summary.
type GetSummaryUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(datasetRepo adapter.DatasetRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{datasetRepo: datasetRepo}
}

// Execute builds the composite summary for the dataset.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*entity.CompositeSummary, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}
	return Summarize(ds), nil
}
