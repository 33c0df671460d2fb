package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicify/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	// Insert persists the invoice header together with any inline items.
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// Save rewrites the invoice header. Items are never written through
	// Save.
	Save(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// FindByNumber returns (nil, nil) when no invoice carries the number.
	FindByNumber(ctx context.Context, db *gorm.DB, number int64) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Pagination) ([]Invoice, error)
	ListByCompanyAndStatus(ctx context.Context, db *gorm.DB, companyName string, status PaymentStatus, page pagination.Pagination) ([]Invoice, error)
	// FindExpired selects invoices created strictly before cutoff with the
	// given status.
	FindExpired(ctx context.Context, db *gorm.DB, cutoff time.Time, status PaymentStatus) ([]Invoice, error)
	// DetachItems clears the invoice reference on every item of the
	// invoice so the parent row can be deleted without violating the
	// items foreign key.
	DetachItems(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error
	Delete(ctx context.Context, db *gorm.DB, invoiceID snowflake.ID) error
}
