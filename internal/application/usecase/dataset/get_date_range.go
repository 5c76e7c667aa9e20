package dataset

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
)

// GetDateRangeInput represents the input for fetching date range options.
type GetDateRangeInput struct {
	DatasetID uuid.UUID
}

// GetDateRangeOutput holds the date boundaries of a dataset plus the
// distinct years and months present, for building date filters.
type GetDateRangeOutput struct {
	MinDate string
	MaxDate string
	Years   []int
	Months  []int
}

// GetDateRangeUseCase returns filterable date range options for a dataset.
type GetDateRangeUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewGetDateRangeUseCase creates a new GetDateRangeUseCase instance.
func NewGetDateRangeUseCase(datasetRepo adapter.DatasetRepository) *GetDateRangeUseCase {
	return &GetDateRangeUseCase{datasetRepo: datasetRepo}
}

// Execute computes the date range options for the dataset.
func (uc *GetDateRangeUseCase) Execute(ctx context.Context, input GetDateRangeInput) (*GetDateRangeOutput, error) {
	ds, err := uc.datasetRepo.Get(ctx, input.DatasetID)
	if err != nil {
		return nil, err
	}

	output := &GetDateRangeOutput{}
	min, max, ok := ds.DateRange()
	if !ok {
		return output, nil
	}
	output.MinDate = min.Format("2006-01-02")
	output.MaxDate = max.Format("2006-01-02")

	yearSet := make(map[int]bool)
	monthSet := make(map[int]bool)
	for _, row := range ds.Rows {
		yearSet[row.Year] = true
		monthSet[row.Month] = true
	}
	for year := range yearSet {
		output.Years = append(output.Years, year)
	}
	for month := range monthSet {
		output.Months = append(output.Months, month)
	}
	sort.Ints(output.Years)
	sort.Ints(output.Months)

	return output, nil
}
