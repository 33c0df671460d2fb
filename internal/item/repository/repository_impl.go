package repository

import (
	"context"

	"github.com/smallbiznis/invoicify/internal/item/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) FindAllViews(ctx context.Context, db *gorm.DB) ([]domain.ItemView, error) {
	var views []domain.ItemView
	err := db.WithContext(ctx).Raw(
		`SELECT items.description, items.quantity, items.total_fee, invoices.number AS invoice_number
		 FROM items
		 JOIN invoices ON invoices.id = items.invoice_id
		 ORDER BY items.id`,
	).Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
