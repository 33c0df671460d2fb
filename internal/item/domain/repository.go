package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	// FindAllViews lists every attached item joined with its owning
	// invoice's number. Detached items have no invoice to display and are
	// excluded.
	FindAllViews(ctx context.Context, db *gorm.DB) ([]ItemView, error)
}
