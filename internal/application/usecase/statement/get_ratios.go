package statement

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetRatiosInput represents the input for computing financial ratios.
type GetRatiosInput struct {
	DatasetID uuid.UUID
}

// GetRatiosUseCase loads a dataset and computes its financial ratios over
// the full history.
type GetRatiosUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetRatiosUseCase creates a new GetRatiosUseCase instance.
func NewGetRatiosUseCase(datasetRepo adapter.DatasetRepository) *GetRatiosUseCase {
	return &GetRatiosUseCase{datasetRepo: datasetRepo}
}

// Execute computes the financial ratios for the dataset.
func (uc *GetRatiosUseCase) Execute(ctx context.Context, input GetRatiosInput) (*entity.FinancialRatios, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}
	return ComputeRatios(ds)
}
