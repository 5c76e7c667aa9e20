package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
)

// UploadDatasetInput represents the input for uploading a transaction table.
type UploadDatasetInput struct {
	Reader io.Reader
}

// UploadDatasetOutput represents the result of a successful upload.
type UploadDatasetOutput struct {
	DatasetID        uuid.UUID
	TransactionCount int
	DateRangeStart   string
	DateRangeEnd     string
	Columns          entity.ColumnSet
}

// UploadDatasetUseCase handles CSV ingestion: parse, validate, normalize,
// classify, persist.
type UploadDatasetUseCase struct {
	datasetRepo adapter.DatasetRepository
}

// NewUploadDatasetUseCase creates a new UploadDatasetUseCase instance.
func NewUploadDatasetUseCase(datasetRepo adapter.DatasetRepository) *UploadDatasetUseCase {
	return &UploadDatasetUseCase{datasetRepo: datasetRepo}
}

// Execute ingests one CSV document and returns the stored dataset's ID with
// basic overview figures. Validation failures surface as coded dataset
// errors before any computation or persistence happens.
func (uc *UploadDatasetUseCase) Execute(ctx context.Context, input UploadDatasetInput) (*UploadDatasetOutput, error) {
	table, err := ParseCSV(input.Reader)
	if err != nil {
		return nil, err
	}

	if err := Validate(table); err != nil {
		return nil, err
	}

	ds := Classify(Normalize(table))

	if err := uc.datasetRepo.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to save dataset: %w", err)
	}

	output := &UploadDatasetOutput{
		DatasetID:        ds.ID,
		TransactionCount: len(ds.Rows),
		Columns:          ds.Columns,
	}
	if min, max, ok := ds.DateRange(); ok {
		output.DateRangeStart = min.Format("2006-01-02")
		output.DateRangeEnd = max.Format("2006-01-02")
	}
	return output, nil
}
