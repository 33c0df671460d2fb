package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
	"github.com/smallbiznis/invoicify/pkg/db/pagination"
)

// CreateInvoiceRequest creates a new invoice, optionally with inline items.
// CreationDate defaults to today when nil.
type CreateInvoiceRequest struct {
	Number        int64
	CreationDate  *time.Time
	CompanyName   string
	PaymentStatus PaymentStatus
	TotalCost     decimal.Decimal
	Items         []itemdomain.Item
}

// UpdateInvoiceRequest is a partial update addressed by invoice number.
// Nil fields leave the stored value untouched; items and total cost are
// never mutated through update.
type UpdateInvoiceRequest struct {
	Number        int64
	CompanyName   *string
	PaymentStatus *PaymentStatus
}

type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	List(ctx context.Context, page pagination.Pagination) ([]Invoice, error)
	// FindByNumber returns (nil, nil) when the invoice is absent.
	FindByNumber(ctx context.Context, number int64) (*Invoice, error)
	Update(ctx context.Context, req UpdateInvoiceRequest) error
	// DeleteExpired removes invoices created more than a year ago that are
	// PAID, detaching their items first.
	DeleteExpired(ctx context.Context) error
	FindUnpaidByCompany(ctx context.Context, companyName string, page pagination.Pagination) ([]Invoice, error)
}

var (
	ErrInvalidNumber  = errors.New("invalid_invoice_number")
	ErrInvalidStatus  = errors.New("invalid_payment_status")
	ErrExists         = errors.New("invoice_exists")
	ErrNotFound       = errors.New("invoice_not_found")
	ErrCompanyMissing = errors.New("invoice_company_not_found")
)
