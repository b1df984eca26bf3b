package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date travels as YYYY-MM-DD and is parsed at this boundary. For transfers
// the destination account must be provided explicitly; the legacy ":<id>"
// description convention is only honored when reading old rows.
type CreateTransactionRequest struct {
	AccountID            int64                  `json:"accountID" binding:"required,gt=0"`
	CategoryID           *int64                 `json:"categoryID"`
	Amount               decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType      domain.TransactionType `json:"transactionType" binding:"required,oneof=income expense transfer"`
	Description          string                 `json:"description"`
	DestinationAccountID *int64                 `json:"destinationAccountID"`
	Date                 string                 `json:"date" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID       *int64  `form:"accountID"`
	CategoryID      *int64  `form:"categoryID"`
	StartDate       string  `form:"startDate"`
	EndDate         string  `form:"endDate"`
	TransactionType *string `form:"type"`
	Limit           int     `form:"limit,default=50"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        int64                  `json:"transactionID"`
	AccountID            int64                  `json:"accountID"`
	AccountName          string                 `json:"accountName,omitempty"`
	CategoryID           *int64                 `json:"categoryID"`
	CategoryName         string                 `json:"categoryName,omitempty"`
	CategoryColor        string                 `json:"categoryColor,omitempty"`
	Amount               decimal.Decimal        `json:"amount"`
	TransactionType      domain.TransactionType `json:"transactionType"`
	Description          string                 `json:"description"`
	DestinationAccountID *int64                 `json:"destinationAccountID,omitempty"`
	Date                 string                 `json:"date"`
	CreatedAt            time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		AccountID:            txn.AccountID,
		AccountName:          txn.AccountName,
		CategoryID:           txn.CategoryID,
		CategoryName:         txn.CategoryName,
		CategoryColor:        txn.CategoryColor,
		Amount:               txn.Amount,
		TransactionType:      txn.TransactionType,
		Description:          txn.Description,
		DestinationAccountID: txn.DestinationAccountID,
		Date:                 FormatDate(txn.Date),
		CreatedAt:            txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
