package statement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetCashFlowInput represents the input for computing a cash flow statement.
type GetCashFlowInput struct {
	DatasetID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetCashFlowUseCase loads a dataset and computes its cash flow statement
// over an optional date range.
type GetCashFlowUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetCashFlowUseCase creates a new GetCashFlowUseCase instance.
func NewGetCashFlowUseCase(datasetRepo adapter.DatasetRepository) *GetCashFlowUseCase {
	return &GetCashFlowUseCase{datasetRepo: datasetRepo}
}

// Execute computes the cash flow statement for the dataset.
func (uc *GetCashFlowUseCase) Execute(ctx context.Context, input GetCashFlowInput) (*entity.CashFlow, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}
	return ComputeCashFlow(ds, input.StartDate, input.EndDate)
}
