// Package domain contains line item models and contracts.
package domain

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Item is an invoice line. IDs are system-generated; the invoice reference
// is nullable because the retention sweep detaches items before deleting
// their parent invoice.
type Item struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"-"`
	Description string          `gorm:"column:description" json:"description"`
	Quantity    int64           `gorm:"column:quantity;not null" json:"quantity"`
	TotalFee    decimal.Decimal `gorm:"column:total_fee;type:numeric(19,4);not null" json:"totalFees"`
	InvoiceID   *snowflake.ID   `gorm:"column:invoice_id;index" json:"-"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "items" }

// ItemView is the list-display projection carrying the owning invoice's
// number.
type ItemView struct {
	Description   string          `json:"description"`
	Quantity      int64           `json:"quantity"`
	TotalFee      decimal.Decimal `json:"totalFees"`
	InvoiceNumber int64           `json:"invoiceNumber"`
}
