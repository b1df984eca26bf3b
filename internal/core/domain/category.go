package domain

import "time"

// CategoryType partitions categories by the kind of transaction they label.
type CategoryType string

const (
	CategoryIncome   CategoryType = "income"
	CategoryExpense  CategoryType = "expense"
	CategoryTransfer CategoryType = "transfer"
)

// Category labels transactions and budgets. Color and icon are display hints
// consumed verbatim by the presentation layer.
type Category struct {
	CategoryID   int64        `json:"categoryID"`
	Name         string       `json:"name"` // Unique
	CategoryType CategoryType `json:"categoryType"`
	Color        string       `json:"color"`
	Icon         string       `json:"icon"`
	CreatedAt    time.Time    `json:"createdAt"`
}
