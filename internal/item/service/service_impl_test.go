package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/invoicify/internal/clock"
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	invoicerepository "github.com/smallbiznis/invoicify/internal/invoice/repository"
	"github.com/smallbiznis/invoicify/internal/item/domain"
	"github.com/smallbiznis/invoicify/internal/item/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testToday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc      domain.Service
	clock    *clock.FakeClock
	invoices invoicedomain.Repository
	db       *gorm.DB
	genID    *snowflake.Node
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companydomain.Company{},
		&invoicedomain.Invoice{},
		&domain.Item{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	invoices := invoicerepository.Provide()
	fake := clock.NewFakeClock(testToday)
	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    fake,
		Repo:     repository.Provide(),
		Invoices: invoices,
	})

	return fixture{svc: svc, clock: fake, invoices: invoices, db: db, genID: node}
}

func (f fixture) seedInvoice(t *testing.T, number int64, totalCost string) invoicedomain.Invoice {
	t.Helper()

	invoice := invoicedomain.Invoice{
		ID:               f.genID.Generate(),
		Number:           number,
		CreationDate:     testToday.AddDate(0, 0, -7),
		LastModifiedDate: testToday.AddDate(0, 0, -7),
		CompanyName:      "aCompany",
		PaymentStatus:    invoicedomain.PaymentStatusUnpaid,
		TotalCost:        decimal.RequireFromString(totalCost),
	}
	require.NoError(t, f.invoices.Insert(context.Background(), f.db, &invoice))
	return invoice
}

func TestCreateItemUnknownInvoice(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateItemRequest{
		Description:   "consulting",
		Quantity:      1,
		TotalFee:      decimal.RequireFromString("10.00"),
		InvoiceNumber: 999,
	})
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	// Nothing was persisted.
	var count int64
	require.NoError(t, f.db.Model(&domain.Item{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateItemIncrementsInvoiceTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedInvoice(t, 121, "120.00")

	id, err := f.svc.Create(ctx, domain.CreateItemRequest{
		Description:   "consulting",
		Quantity:      1,
		TotalFee:      decimal.RequireFromString("10.00"),
		InvoiceNumber: 121,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored, err := f.invoices.FindByNumber(ctx, f.db, 121)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.TotalCost.Equal(decimal.RequireFromString("130.00")), stored.TotalCost.String())
	assert.Equal(t, testToday, stored.LastModifiedDate)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "consulting", stored.Items[0].Description)
}

func TestCreateItemAccumulates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedInvoice(t, 121, "100.00")

	for _, fee := range []string{"10.50", "0.25"} {
		_, err := f.svc.Create(ctx, domain.CreateItemRequest{
			Description:   "line",
			Quantity:      1,
			TotalFee:      decimal.RequireFromString(fee),
			InvoiceNumber: 121,
		})
		require.NoError(t, err)
	}

	stored, err := f.invoices.FindByNumber(ctx, f.db, 121)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.TotalCost.Equal(decimal.RequireFromString("110.75")), stored.TotalCost.String())
}

func TestFetchAllCarriesInvoiceNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedInvoice(t, 121, "0")
	f.seedInvoice(t, 122, "0")

	_, err := f.svc.Create(ctx, domain.CreateItemRequest{
		Description:   "first",
		Quantity:      2,
		TotalFee:      decimal.RequireFromString("5.00"),
		InvoiceNumber: 121,
	})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, domain.CreateItemRequest{
		Description:   "second",
		Quantity:      1,
		TotalFee:      decimal.RequireFromString("7.00"),
		InvoiceNumber: 122,
	})
	require.NoError(t, err)

	views, err := f.svc.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "first", views[0].Description)
	assert.Equal(t, int64(121), views[0].InvoiceNumber)
	assert.Equal(t, "second", views[1].Description)
	assert.Equal(t, int64(122), views[1].InvoiceNumber)
}

func TestFetchAllEmpty(t *testing.T) {
	f := newFixture(t)

	views, err := f.svc.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
}
