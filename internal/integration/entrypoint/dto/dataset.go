package dto

import (
	"github.com/finbot/backend/internal/application/usecase/dataset"
	"github.com/finbot/backend/internal/domain/entity"
)

// UploadDatasetResponse represents the response for a dataset upload.
type UploadDatasetResponse struct {
	DatasetID        string   `json:"dataset_id"`
	TransactionCount int      `json:"transaction_count"`
	DateRangeStart   string   `json:"date_range_start,omitempty"`
	DateRangeEnd     string   `json:"date_range_end,omitempty"`
	Columns          []string `json:"columns"`
}

// ToUploadDatasetResponse converts an UploadDatasetOutput to its DTO.
func ToUploadDatasetResponse(output *dataset.UploadDatasetOutput) UploadDatasetResponse {
	return UploadDatasetResponse{
		DatasetID:        output.DatasetID.String(),
		TransactionCount: output.TransactionCount,
		DateRangeStart:   output.DateRangeStart,
		DateRangeEnd:     output.DateRangeEnd,
		Columns:          columnNames(output.Columns),
	}
}

// DateRangeResponse represents the selectable date range of a dataset.
type DateRangeResponse struct {
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
	Years   []int  `json:"years"`
	Months  []int  `json:"months"`
}

// ToDateRangeResponse converts a GetDateRangeOutput to its DTO.
func ToDateRangeResponse(output *dataset.GetDateRangeOutput) DateRangeResponse {
	return DateRangeResponse{
		MinDate: output.MinDate,
		MaxDate: output.MaxDate,
		Years:   output.Years,
		Months:  output.Months,
	}
}

func columnNames(columns entity.ColumnSet) []string {
	names := make([]string, 0, 7)
	add := func(present bool, name string) {
		if present {
			names = append(names, name)
		}
	}
	add(columns.Date, "date")
	add(columns.Amount, "amount")
	add(columns.Description, "description")
	add(columns.Category, "category")
	add(columns.Subcategory, "subcategory")
	add(columns.AccountType, "account_type")
	add(columns.TransactionType, "transaction_type")
	return names
}
