package domain

import (
	"context"
	"errors"
)

// UpdateCompanyRequest is a partial update. Nil fields leave the stored
// value untouched; the update applies only when CompanyName matches the
// targeted company case-insensitively.
type UpdateCompanyRequest struct {
	CompanyName *string
	Street      *string
	City        *string
	State       *string
	ZipCode     *string
	ContactName *string
	Title       *string
	PhoneNumber *string
}

type Service interface {
	Create(ctx context.Context, company Company) error
	FetchAll(ctx context.Context) ([]Company, error)
	FetchSummaries(ctx context.Context) ([]CompanySummary, error)
	// FetchByName returns (nil, nil) when the company is absent; callers use
	// it as an existence probe.
	FetchByName(ctx context.Context, name string) (*Company, error)
	Update(ctx context.Context, name string, req UpdateCompanyRequest) error
}

var (
	ErrInvalidName = errors.New("invalid_company_name")
	ErrExists      = errors.New("company_exists")
	ErrNotFound    = errors.New("company_not_found")
)
