package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicify/internal/invoice/domain"
	"github.com/smallbiznis/invoicify/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	// Omit the association so header updates never rewrite item rows.
	return db.WithContext(ctx).Omit("Items").Save(invoice).Error
}

func (r *repo) FindByNumber(ctx context.Context, db *gorm.DB, number int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items").
		Where("number = ?", number).
		First(&invoice).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	stmt := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Preload("Items")
	err := page.Apply(stmt).
		Order("creation_date asc, number asc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) ListByCompanyAndStatus(ctx context.Context, db *gorm.DB, companyName string, status domain.PaymentStatus, page pagination.Pagination) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	stmt := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Preload("Items").
		Where("company_name = ?", companyName).
		Where("payment_status = ?", status)
	err := page.Apply(stmt).
		Order("creation_date asc, number asc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) FindExpired(ctx context.Context, db *gorm.DB, cutoff time.Time, status domain.PaymentStatus) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Where("creation_date < ?", cutoff).
		Where("payment_status = ?", status).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) DetachItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error {
	return db.WithContext(ctx).Exec(
		`UPDATE items SET invoice_id = NULL WHERE invoice_id = ?`,
		invoiceID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error {
	return db.WithContext(ctx).
		Delete(&domain.Invoice{}, "id = ?", invoiceID).Error
}
