package statement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetBalanceSheetInput represents the input for computing a balance sheet.
type GetBalanceSheetInput struct {
	DatasetID uuid.UUID
	AsOfDate  *time.Time
}

// GetBalanceSheetUseCase loads a dataset and computes its balance sheet as
// of an optional date.
type GetBalanceSheetUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetBalanceSheetUseCase creates a new GetBalanceSheetUseCase instance.
func NewGetBalanceSheetUseCase(datasetRepo adapter.DatasetRepository) *GetBalanceSheetUseCase {
	return &GetBalanceSheetUseCase{datasetRepo: datasetRepo}
}

// Execute computes the balance sheet for the dataset.
func (uc *GetBalanceSheetUseCase) Execute(ctx context.Context, input GetBalanceSheetInput) (*entity.BalanceSheet, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}
	return ComputeBalanceSheet(ds, input.AsOfDate)
}
