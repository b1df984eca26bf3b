package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the cadence of a recurring transaction template.
type Frequency string

const (
	Daily    Frequency = "daily"
	Weekly   Frequency = "weekly"
	MonthlyF Frequency = "monthly"
	YearlyF  Frequency = "yearly"
)

// RecurringTransaction is a template that materializes real transactions on a
// schedule. NextOccurrence drives the scheduler; LastOccurrence records the
// most recent materialization.
type RecurringTransaction struct {
	RecurringID     int64           `json:"recurringID"`
	AccountID       int64           `json:"accountID"`
	CategoryID      *int64          `json:"categoryID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
	Frequency       Frequency       `json:"frequency"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate"` // Nullable: open-ended when nil
	LastOccurrence  *time.Time      `json:"lastOccurrence"`
	NextOccurrence  time.Time       `json:"nextOccurrence"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`

	// Joined display fields, populated by list queries.
	AccountName  string `json:"accountName,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

// NextAfter steps an occurrence date forward by one period. Month and year
// steps use calendar arithmetic, so Jan 31 + 1 month normalizes per
// time.AddDate rules rather than assuming 30-day months.
func (r RecurringTransaction) NextAfter(occurrence time.Time) time.Time {
	switch r.Frequency {
	case Daily:
		return occurrence.AddDate(0, 0, 1)
	case Weekly:
		return occurrence.AddDate(0, 0, 7)
	case YearlyF:
		return occurrence.AddDate(1, 0, 0)
	default: // monthly
		return occurrence.AddDate(0, 1, 0)
	}
}

// Expired reports whether the template's end date has passed.
func (r RecurringTransaction) Expired(now time.Time) bool {
	return r.EndDate != nil && r.EndDate.Before(now)
}
