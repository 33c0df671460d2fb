// Package domain contains the invoice lifecycle models and contracts.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
)

// PaymentStatus represents the payment state of an invoice.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// Invoice is the billing document for a company. The number is assigned by
// the caller and immutable; the row ID is internal. TotalCost at rest is
// the header amount plus the sum of the attached items' fees.
type Invoice struct {
	ID               snowflake.ID      `gorm:"primaryKey" json:"-"`
	Number           int64             `gorm:"column:number;not null;uniqueIndex:ux_invoices_number" json:"number"`
	CreationDate     time.Time         `gorm:"column:creation_date;type:date;not null" json:"creationDate"`
	LastModifiedDate time.Time         `gorm:"column:last_modified_date;type:date;not null" json:"lastModifiedDate"`
	CompanyName      string            `gorm:"column:company_name;not null;index" json:"companyName"`
	PaymentStatus    PaymentStatus     `gorm:"column:payment_status;type:text;not null;default:'UNPAID'" json:"paymentStatus"`
	TotalCost        decimal.Decimal   `gorm:"column:total_cost;type:numeric(19,4);not null" json:"totalCost"`
	Items            []itemdomain.Item `gorm:"foreignKey:InvoiceID;references:ID" json:"items,omitempty"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceSummary is the reduced list-display projection.
type InvoiceSummary struct {
	Number        int64           `json:"number"`
	CreationDate  time.Time       `json:"creationDate"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// Summary projects the invoice for list display.
func (i Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		Number:        i.Number,
		CreationDate:  i.CreationDate,
		PaymentStatus: i.PaymentStatus,
		TotalCost:     i.TotalCost,
	}
}

// TotalCost folds item fees into a header amount with decimal arithmetic.
// Both mutation paths (invoice creation, item attachment) compute totals
// through this single function so the two call sites cannot drift.
func TotalCost(header decimal.Decimal, items []itemdomain.Item) decimal.Decimal {
	total := header
	for _, item := range items {
		total = total.Add(item.TotalFee)
	}
	return total
}
