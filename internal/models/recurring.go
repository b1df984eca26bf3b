package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction mirrors the recurring_transactions table.
type RecurringTransaction struct {
	RecurringID     int64           `db:"id"`
	AccountID       int64           `db:"account_id"`
	CategoryID      *int64          `db:"category_id"` // Nullable
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"type"`
	Description     string          `db:"description"` // Nullable
	Frequency       string          `db:"frequency"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`        // Nullable
	LastOccurrence  *time.Time      `db:"last_occurrence"` // Nullable
	NextOccurrence  time.Time       `db:"next_occurrence"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
}
