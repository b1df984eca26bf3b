package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table.
type Account struct {
	AccountID      int64           `db:"id"`
	Name           string          `db:"name"`
	AccountType    string          `db:"type"`
	Currency       string          `db:"currency"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	Description    string          `db:"description"` // Nullable
	Color          string          `db:"color"`       // Nullable
	Icon           string          `db:"icon"`        // Nullable
	IsActive       bool            `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
}
