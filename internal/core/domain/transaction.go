package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a monetary event.
type TransactionType string

const (
	Income   TransactionType = "income"
	Expense  TransactionType = "expense"
	Transfer TransactionType = "transfer"
)

// Transaction is a dated monetary event against one account. Amount is always
// a non-negative magnitude; the type determines the sign of its effect on the
// account balance. For transfers the destination account is carried in
// DestinationAccountID; older rows may instead encode it as a ":<id>" suffix
// on the description (see DestinationAccount).
type Transaction struct {
	TransactionID        int64           `json:"transactionID"`
	AccountID            int64           `json:"accountID"`
	CategoryID           *int64          `json:"categoryID"` // Nullable FK -> categories
	Amount               decimal.Decimal `json:"amount"`
	TransactionType      TransactionType `json:"transactionType"`
	Description          string          `json:"description"`
	DestinationAccountID *int64          `json:"destinationAccountID"` // Transfers only
	Date                 time.Time       `json:"date"`
	CreatedAt            time.Time       `json:"createdAt"`

	// Joined read-side fields, populated by list queries only.
	CategoryName  string `json:"categoryName,omitempty"`
	CategoryColor string `json:"categoryColor,omitempty"`
	CategoryIcon  string `json:"categoryIcon,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
}

// DestinationAccount resolves the transfer destination for this transaction.
// The explicit DestinationAccountID field wins; if it is unset, the legacy
// convention of a ":<id>" suffix on the description is parsed as a fallback.
// Returns false for non-transfers and when no destination can be resolved.
func (t Transaction) DestinationAccount() (int64, bool) {
	if t.TransactionType != Transfer {
		return 0, false
	}
	if t.DestinationAccountID != nil {
		return *t.DestinationAccountID, true
	}
	idx := strings.LastIndex(t.Description, ":")
	if idx < 0 || idx == len(t.Description)-1 {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(t.Description[idx+1:]), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Validate checks the structural invariants of a transaction before it is
// handed to the store.
func (t Transaction) Validate() error {
	if t.AccountID <= 0 {
		return errAccountRequired
	}
	if t.Amount.IsNegative() {
		return errNegativeAmount
	}
	switch t.TransactionType {
	case Income, Expense, Transfer:
	default:
		return errUnknownType
	}
	if t.TransactionType == Transfer {
		if _, ok := t.DestinationAccount(); !ok {
			return errTransferDestination
		}
	}
	return nil
}
