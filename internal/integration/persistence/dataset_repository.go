// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbot/backend/internal/application/adapter"
	"github.com/finbot/backend/internal/domain/entity"
	domainerror "github.com/finbot/backend/internal/domain/error"
	"github.com/finbot/backend/internal/integration/persistence/model"
)

// datasetRepository implements the adapter.DatasetRepository interface.
type datasetRepository struct {
	db *gorm.DB
}

// NewDatasetRepository creates a new dataset repository instance.
func NewDatasetRepository(db *gorm.DB) adapter.DatasetRepository {
	return &datasetRepository{
		db: db,
	}
}

// Save stores a normalized, classified dataset with all of its rows.
func (r *datasetRepository) Save(ctx context.Context, dataset *entity.Dataset) error {
	datasetModel := model.DatasetFromEntity(dataset)
	result := r.db.WithContext(ctx).Create(datasetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Get retrieves a dataset by its ID with rows in normalized order.
func (r *datasetRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Dataset, error) {
	var datasetModel model.DatasetModel
	result := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&datasetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewDatasetError(
				domainerror.ErrCodeDatasetNotFound,
				"Dataset not found",
				domainerror.ErrDatasetNotFound,
			)
		}
		return nil, result.Error
	}
	return datasetModel.ToEntity(), nil
}

// Delete removes a dataset and its rows.
func (r *datasetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dataset_id = ?", id).Delete(&model.DatasetRowModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.DatasetModel{}).Error
	})
}
