package dto

import (
	"time"

	"github.com/finanzas-app/finanzas_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
// A nil categoryID creates a budget for uncategorized spending.
type CreateBudgetRequest struct {
	CategoryID *int64              `json:"categoryID"`
	Amount     decimal.Decimal     `json:"amount" binding:"required"`
	Period     domain.BudgetPeriod `json:"period" binding:"required,oneof=monthly quarterly yearly custom"`
	StartDate  string              `json:"startDate" binding:"required"`
	EndDate    string              `json:"endDate" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      int64               `json:"budgetID"`
	CategoryID    *int64              `json:"categoryID"`
	CategoryName  string              `json:"categoryName,omitempty"`
	CategoryColor string              `json:"categoryColor,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	Period        domain.BudgetPeriod `json:"period"`
	StartDate     string              `json:"startDate"`
	EndDate       string              `json:"endDate"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		CategoryID:    b.CategoryID,
		CategoryName:  b.CategoryName,
		CategoryColor: b.CategoryColor,
		Amount:        b.Amount,
		Period:        b.Period,
		StartDate:     FormatDate(b.StartDate),
		EndDate:       FormatDate(b.EndDate),
		CreatedAt:     b.CreatedAt,
	}
}

// ToListBudgetResponse converts a slice of budgets to response DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
