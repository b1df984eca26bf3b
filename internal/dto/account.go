package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=checking savings credit investment cash other"`
	Currency       string             `json:"currency" binding:"required,len=3"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	Description    string             `json:"description"`
	Color          string             `json:"color"`
	Icon           string             `json:"icon"`
}

// UpdateAccountRequest defines the mutable account fields. Pointers
// distinguish "not provided" from zero values; the service merges the set
// fields onto the stored record, so the repository never builds column lists
// dynamically.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      int64              `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	Currency       string             `json:"currency"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	Description    string             `json:"description"`
	Color          string             `json:"color"`
	Icon           string             `json:"icon"`
	IsActive       bool               `json:"isActive"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		Currency:       acc.Currency,
		InitialBalance: acc.InitialBalance,
		CurrentBalance: acc.CurrentBalance,
		Description:    acc.Description,
		Color:          acc.Color,
		Icon:           acc.Icon,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
