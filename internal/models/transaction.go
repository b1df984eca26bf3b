package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. The joined category/account
// display columns are only populated by the list query.
type Transaction struct {
	TransactionID        int64           `db:"id"`
	AccountID            int64           `db:"account_id"`
	CategoryID           *int64          `db:"category_id"` // Nullable
	Amount               decimal.Decimal `db:"amount"`
	TransactionType      string          `db:"type"`
	Description          string          `db:"description"`            // Nullable
	DestinationAccountID *int64          `db:"destination_account_id"` // Transfers only
	Date                 time.Time       `db:"date"`
	CreatedAt            time.Time       `db:"created_at"`

	CategoryName  string `db:"category_name"`
	CategoryColor string `db:"category_color"`
	CategoryIcon  string `db:"category_icon"`
	AccountName   string `db:"account_name"`
}
