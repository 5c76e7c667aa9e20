// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/domain/entity"
)

// DatasetModel represents the datasets table in the database. The column
// flags record which optional columns the upload carried so calculators can
// branch without re-inspecting rows.
type DatasetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UploadedAt time.Time `gorm:"not null"`

	HasDate            bool `gorm:"not null;default:false"`
	HasAmount          bool `gorm:"not null;default:false"`
	HasDescription     bool `gorm:"not null;default:false"`
	HasCategory        bool `gorm:"not null;default:false"`
	HasSubcategory     bool `gorm:"not null;default:false"`
	HasAccountType     bool `gorm:"not null;default:false"`
	HasTransactionType bool `gorm:"not null;default:false"`

	Rows []DatasetRowModel `gorm:"foreignKey:DatasetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DatasetModel.
func (DatasetModel) TableName() string {
	return "datasets"
}

// DatasetRowModel represents one normalized transaction row. Position keeps
// the date-sorted order the normalizer produced.
type DatasetRowModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	DatasetID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"not null"`

	Date            time.Time       `gorm:"type:date;not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Category        string          `gorm:"type:varchar(50)"`
	Subcategory     string          `gorm:"type:varchar(100)"`
	AccountType     string          `gorm:"type:varchar(100)"`
	TransactionType string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for the DatasetRowModel.
func (DatasetRowModel) TableName() string {
	return "dataset_rows"
}

// ToEntity converts a DatasetModel to a domain Dataset entity. The derived
// month fields are recomputed from the stored date.
func (m *DatasetModel) ToEntity() *entity.Dataset {
	rows := make([]entity.Transaction, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = entity.Transaction{
			Date:            row.Date,
			Amount:          row.Amount,
			Description:     row.Description,
			Category:        entity.Category(row.Category),
			Subcategory:     row.Subcategory,
			AccountType:     row.AccountType,
			TransactionType: row.TransactionType,
			Month:           int(row.Date.Month()),
			Year:            row.Date.Year(),
			MonthYear:       row.Date.Format("2006-01"),
		}
	}

	return &entity.Dataset{
		ID:         m.ID,
		UploadedAt: m.UploadedAt,
		Columns: entity.ColumnSet{
			Date:            m.HasDate,
			Amount:          m.HasAmount,
			Description:     m.HasDescription,
			Category:        m.HasCategory,
			Subcategory:     m.HasSubcategory,
			AccountType:     m.HasAccountType,
			TransactionType: m.HasTransactionType,
		},
		Rows: rows,
	}
}

// DatasetFromEntity creates a DatasetModel from a domain Dataset entity.
func DatasetFromEntity(dataset *entity.Dataset) *DatasetModel {
	rows := make([]DatasetRowModel, len(dataset.Rows))
	for i, tx := range dataset.Rows {
		rows[i] = DatasetRowModel{
			DatasetID:       dataset.ID,
			Position:        i,
			Date:            tx.Date,
			Amount:          tx.Amount,
			Description:     tx.Description,
			Category:        string(tx.Category),
			Subcategory:     tx.Subcategory,
			AccountType:     tx.AccountType,
			TransactionType: tx.TransactionType,
		}
	}

	return &DatasetModel{
		ID:                 dataset.ID,
		UploadedAt:         dataset.UploadedAt,
		HasDate:            dataset.Columns.Date,
		HasAmount:          dataset.Columns.Amount,
		HasDescription:     dataset.Columns.Description,
		HasCategory:        dataset.Columns.Category,
		HasSubcategory:     dataset.Columns.Subcategory,
		HasAccountType:     dataset.Columns.AccountType,
		HasTransactionType: dataset.Columns.TransactionType,
		Rows:               rows,
	}
}
