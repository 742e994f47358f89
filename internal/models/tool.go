package models

import (
	"time"

	"github.com/google/uuid"
)

type ToolCategory string

const (
	CategoryFinance  ToolCategory = "finance"
	CategoryBusiness ToolCategory = "business"
	CategoryHealth   ToolCategory = "health"
	CategoryEveryday ToolCategory = "everyday"
)

// Categories lists every known category in display order.
func Categories() []ToolCategory {
	return []ToolCategory{CategoryFinance, CategoryBusiness, CategoryHealth, CategoryEveryday}
}

// Valid reports whether c is one of the known categories.
func (c ToolCategory) Valid() bool {
	switch c {
	case CategoryFinance, CategoryBusiness, CategoryHealth, CategoryEveryday:
		return true
	}
	return false
}

type Tool struct {
	ID          uuid.UUID    `db:"id"`
	Category    ToolCategory `db:"category"`
	Slug        string       `db:"slug"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Tags        []string     `db:"tags"` // free text, normalized only when scoring
	Position    int          `db:"position"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}
