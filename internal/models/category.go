package models

import "time"

// Category mirrors the categories table.
type Category struct {
	CategoryID   int64     `db:"id"`
	Name         string    `db:"name"`
	CategoryType string    `db:"type"`
	Color        string    `db:"color"`
	Icon         string    `db:"icon"` // Nullable
	CreatedAt    time.Time `db:"created_at"`
}
