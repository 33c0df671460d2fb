package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// CreateItemRequest attaches a new line item to an existing invoice.
type CreateItemRequest struct {
	Description   string
	Quantity      int64
	TotalFee      decimal.Decimal
	InvoiceNumber int64
}

type Service interface {
	// Create persists the item and folds its fee into the parent invoice's
	// total cost, refreshing the invoice's last-modified date. Returns the
	// generated item ID.
	Create(ctx context.Context, req CreateItemRequest) (snowflake.ID, error)
	FetchAll(ctx context.Context) ([]ItemView, error)
}
