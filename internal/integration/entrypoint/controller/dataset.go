package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finbot/backend/internal/application/usecase/dataset"
	domainerror "github.com/finbot/backend/internal/domain/error"
	"github.com/finbot/backend/internal/integration/entrypoint/dto"
)

// DatasetController handles dataset upload and inspection endpoints.
type DatasetController struct {
	uploadDatasetUseCase *dataset.UploadDatasetUseCase
	getDateRangeUseCase  *dataset.GetDateRangeUseCase
}

// NewDatasetController creates a new dataset controller instance.
func NewDatasetController(
	uploadDatasetUseCase *dataset.UploadDatasetUseCase,
	getDateRangeUseCase *dataset.GetDateRangeUseCase,
) *DatasetController {
	return &DatasetController{
		uploadDatasetUseCase: uploadDatasetUseCase,
		getDateRangeUseCase:  getDateRangeUseCase,
	}
}

// Upload handles POST /datasets requests. The transaction table arrives as
// a multipart CSV file under the "file" field.
func (c *DatasetController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A CSV file is required under the 'file' field",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	output, err := c.uploadDatasetUseCase.Execute(ctx.Request.Context(), dataset.UploadDatasetInput{
		Reader: file,
	})
	if err != nil {
		c.handleDatasetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUploadDatasetResponse(output))
}

// Template handles GET /datasets/template requests. It returns a sample
// CSV showing the expected upload format.
func (c *DatasetController) Template(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="transaction_template.csv"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(dataset.SampleCSV()))
}

// GetDateRange handles GET /datasets/:id/date-range requests.
func (c *DatasetController) GetDateRange(ctx *gin.Context) {
	datasetID, ok := parseDatasetID(ctx)
	if !ok {
		return
	}

	output, err := c.getDateRangeUseCase.Execute(ctx.Request.Context(), dataset.GetDateRangeInput{
		DatasetID: datasetID,
	})
	if err != nil {
		c.handleDatasetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDateRangeResponse(output))
}

// handleDatasetError maps dataset errors to HTTP responses.
func (c *DatasetController) handleDatasetError(ctx *gin.Context, err error) {
	respondDomainError(ctx, err)
}

// parseDatasetID reads and validates the :id path parameter, writing a 400
// response on failure.
func parseDatasetID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid dataset ID",
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondDomainError maps the coded domain errors shared by every endpoint
// to HTTP responses.
func respondDomainError(ctx *gin.Context, err error) {
	var datasetErr *domainerror.DatasetError
	if errors.As(err, &datasetErr) {
		ctx.JSON(statusForDatasetError(datasetErr.Code), dto.ErrorResponse{
			Error: datasetErr.Message,
			Code:  string(datasetErr.Code),
		})
		return
	}

	var computationErr *domainerror.ComputationError
	if errors.As(err, &computationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: computationErr.Message,
			Code:  string(computationErr.Code),
		})
		return
	}

	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportInternalError {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func statusForDatasetError(code domainerror.DatasetErrorCode) int {
	switch code {
	case domainerror.ErrCodeDatasetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDatasetInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
