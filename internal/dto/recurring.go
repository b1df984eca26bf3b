package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest defines the data needed to schedule a recurring
// transaction. StartDate sets the first occurrence; a blank EndDate keeps the
// schedule open-ended.
type CreateRecurringRequest struct {
	AccountID       int64                  `json:"accountID" binding:"required,gt=0"`
	CategoryID      *int64                 `json:"categoryID"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=income expense"`
	Description     string                 `json:"description"`
	Frequency       domain.Frequency       `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	StartDate       string                 `json:"startDate" binding:"required"`
	EndDate         string                 `json:"endDate"`
}

// UpdateRecurringRequest defines the mutable template fields. Pointers
// distinguish "not provided" from zero values; an empty EndDate string makes
// the schedule open-ended again.
type UpdateRecurringRequest struct {
	Amount      *decimal.Decimal  `json:"amount"`
	Description *string           `json:"description"`
	Frequency   *domain.Frequency `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	EndDate     *string           `json:"endDate"`
	IsActive    *bool             `json:"isActive"`
}

// RecurringResponse defines the data returned for a recurring transaction.
type RecurringResponse struct {
	RecurringID     int64                  `json:"recurringID"`
	AccountID       int64                  `json:"accountID"`
	AccountName     string                 `json:"accountName,omitempty"`
	CategoryID      *int64                 `json:"categoryID"`
	CategoryName    string                 `json:"categoryName,omitempty"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Description     string                 `json:"description"`
	Frequency       domain.Frequency       `json:"frequency"`
	StartDate       string                 `json:"startDate"`
	EndDate         string                 `json:"endDate,omitempty"`
	NextOccurrence  string                 `json:"nextOccurrence"`
	LastOccurrence  string                 `json:"lastOccurrence,omitempty"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToRecurringResponse converts a domain.RecurringTransaction to its response DTO.
func ToRecurringResponse(rec *domain.RecurringTransaction) RecurringResponse {
	resp := RecurringResponse{
		RecurringID:     rec.RecurringID,
		AccountID:       rec.AccountID,
		AccountName:     rec.AccountName,
		CategoryID:      rec.CategoryID,
		CategoryName:    rec.CategoryName,
		Amount:          rec.Amount,
		TransactionType: rec.TransactionType,
		Description:     rec.Description,
		Frequency:       rec.Frequency,
		StartDate:       FormatDate(rec.StartDate),
		NextOccurrence:  FormatDate(rec.NextOccurrence),
		IsActive:        rec.IsActive,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.EndDate != nil {
		resp.EndDate = FormatDate(*rec.EndDate)
	}
	if rec.LastOccurrence != nil {
		resp.LastOccurrence = FormatDate(*rec.LastOccurrence)
	}
	return resp
}

// ToListRecurringResponse converts a slice of recurring transactions to response DTOs.
func ToListRecurringResponse(recs []domain.RecurringTransaction) []RecurringResponse {
	res := make([]RecurringResponse, len(recs))
	for i := range recs {
		res[i] = ToRecurringResponse(&recs[i])
	}
	return res
}
