// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbot/backend/internal/domain/entity"
)

// DatasetRepository persists uploaded datasets for the lifetime of a session.
type DatasetRepository interface {
	// Save stores a normalized, classified dataset.
	Save(ctx context.Context, dataset *entity.Dataset) error

	// Get returns the dataset with the given ID, or a dataset-not-found error.
	Get(ctx context.Context, id uuid.UUID) (*entity.Dataset, error)

	// Delete removes the dataset with the given ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
