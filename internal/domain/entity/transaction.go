// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents the derived classification of a transaction.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
	CategoryUnknown Category = "Unknown"
)

// Transaction represents one normalized row of the uploaded transaction table.
// Amount sign convention: positive = inflow/income-like, negative =
// outflow/expense-like.
type Transaction struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string

	// Optional columns; meaningful only when the owning Dataset's ColumnSet
	// reports the column as present.
	Category        Category
	Subcategory     string
	AccountType     string
	TransactionType string

	// Derived during normalization.
	Month     int
	Year      int
	MonthYear string // "YYYY-MM"
}

// Classify returns the category for the transaction per the priority rule:
// a pre-supplied category wins; otherwise the amount sign decides, with a
// zero amount classified as Unknown.
func (t Transaction) Classify(hasCategoryColumn bool) Category {
	if hasCategoryColumn && t.Category != "" {
		return t.Category
	}
	switch t.Amount.Sign() {
	case 1:
		return CategoryIncome
	case -1:
		return CategoryExpense
	default:
		return CategoryUnknown
	}
}
