package statement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// GetIncomeStatementInput represents the input for computing an income
// statement.
type GetIncomeStatementInput struct {
	DatasetID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetIncomeStatementUseCase loads a dataset and computes its income
// statement over an optional date range.
type GetIncomeStatementUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetIncomeStatementUseCase creates a new GetIncomeStatementUseCase
// instance.
func NewGetIncomeStatementUseCase(datasetRepo adapter.DatasetRepository) *GetIncomeStatementUseCase {
	return &GetIncomeStatementUseCase{datasetRepo: datasetRepo}
}

// Execute computes the income statement for the dataset.
func (uc *GetIncomeStatementUseCase) Execute(ctx context.Context, input GetIncomeStatementInput) (*entity.IncomeStatement, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}
	return ComputeIncomeStatement(ds, input.StartDate, input.EndDate)
}
