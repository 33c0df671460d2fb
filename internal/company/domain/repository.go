package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, company *Company) error
	Save(ctx context.Context, db *gorm.DB, company *Company) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Company, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Company, error)
}
