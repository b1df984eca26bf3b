package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account by how the user holds the money.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
	Cash       AccountType = "cash"
	OtherAcct  AccountType = "other"
)

// Account represents a balance-holding account within the core domain.
// CurrentBalance is maintained by the store: it always equals InitialBalance
// plus the signed sum of every transaction applied to this account.
type Account struct {
	AccountID      int64           `json:"accountID"`
	Name           string          `json:"name"` // Unique
	AccountType    AccountType     `json:"accountType"`
	Currency       string          `json:"currency"` // ISO 4217 code
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Description    string          `json:"description"` // Nullable in DB, empty string here
	Color          string          `json:"color"`
	Icon           string          `json:"icon"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}
