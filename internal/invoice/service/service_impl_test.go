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
	companyrepository "github.com/smallbiznis/invoicify/internal/company/repository"
	companyservice "github.com/smallbiznis/invoicify/internal/company/service"
	"github.com/smallbiznis/invoicify/internal/invoice/domain"
	"github.com/smallbiznis/invoicify/internal/invoice/repository"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
	"github.com/smallbiznis/invoicify/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testToday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc   domain.Service
	clock *clock.FakeClock
	db    *gorm.DB
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&companydomain.Company{},
		&domain.Invoice{},
		&itemdomain.Item{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	logger := zap.NewNop()
	companySvc := companyservice.New(companyservice.Params{
		DB:   db,
		Log:  logger,
		Repo: companyrepository.Provide(),
	})
	require.NoError(t, companySvc.Create(context.Background(), companydomain.Company{
		CompanyName: "aCompany",
		Address:     companydomain.Address{City: "Austin", State: "TX"},
	}))

	fake := clock.NewFakeClock(testToday)
	svc := New(Params{
		DB:        db,
		Log:       logger,
		GenID:     node,
		Clock:     fake,
		Repo:      repository.Provide(),
		Companies: companySvc,
	})

	return fixture{svc: svc, clock: fake, db: db}
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCreateInvoiceComputesTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	invoice, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:      121,
		CompanyName: "aCompany",
		TotalCost:   money("120.00"),
		Items: []itemdomain.Item{
			{Description: "consulting", Quantity: 1, TotalFee: money("10.00")},
		},
	})
	require.NoError(t, err)

	assert.True(t, invoice.TotalCost.Equal(money("130.00")), invoice.TotalCost.String())
	assert.Equal(t, domain.PaymentStatusUnpaid, invoice.PaymentStatus)
	assert.Equal(t, testToday, invoice.CreationDate)

	stored, err := f.svc.FindByNumber(ctx, 121)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.TotalCost.Equal(money("130.00")), stored.TotalCost.String())
	assert.Len(t, stored.Items, 1)
}

func TestCreateInvoiceNoItems(t *testing.T) {
	f := newFixture(t)

	invoice, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Number:      121,
		CompanyName: "aCompany",
		TotalCost:   money("120.00"),
	})
	require.NoError(t, err)
	assert.True(t, invoice.TotalCost.Equal(money("120.00")), invoice.TotalCost.String())
}

func TestCreateInvoiceDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{Number: 121, CompanyName: "aCompany"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:      121,
		CompanyName: "aCompany",
		TotalCost:   money("999.99"),
	})
	assert.ErrorIs(t, err, domain.ErrExists)
}

func TestCreateInvoiceUnknownCompany(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		Number:      122,
		CompanyName: "ghostCompany",
	})
	assert.ErrorIs(t, err, domain.ErrCompanyMissing)
}

func TestListPagedOrdersByCreationDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Insert out of order; listing must sort by creation date ascending.
	for _, seed := range []struct {
		number int64
		date   time.Time
	}{
		{103, testToday.AddDate(0, 0, -1)},
		{101, testToday.AddDate(0, 0, -5)},
		{105, testToday},
		{102, testToday.AddDate(0, 0, -3)},
		{104, testToday.AddDate(0, 0, -2)},
	} {
		date := seed.date
		_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
			Number:       seed.number,
			CreationDate: &date,
			CompanyName:  "aCompany",
		})
		require.NoError(t, err)
	}

	page0, err := f.svc.List(ctx, pagination.Pagination{PageNumber: 0, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page0, 2)
	assert.Equal(t, int64(101), page0[0].Number)
	assert.Equal(t, int64(102), page0[1].Number)

	page1, err := f.svc.List(ctx, pagination.Pagination{PageNumber: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, int64(103), page1[0].Number)
	assert.Equal(t, int64(104), page1[1].Number)

	page9, err := f.svc.List(ctx, pagination.Pagination{PageNumber: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page9)
}

func TestFindByNumberAbsent(t *testing.T) {
	f := newFixture(t)

	invoice, err := f.svc.FindByNumber(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, invoice)
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Update(context.Background(), domain.UpdateInvoiceRequest{Number: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvoicePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := testToday.AddDate(0, 0, -10)
	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:       121,
		CreationDate: &created,
		CompanyName:  "aCompany",
		TotalCost:    money("120.00"),
		Items: []itemdomain.Item{
			{Description: "consulting", Quantity: 1, TotalFee: money("10.00")},
		},
	})
	require.NoError(t, err)

	paid := domain.PaymentStatusPaid
	require.NoError(t, f.svc.Update(ctx, domain.UpdateInvoiceRequest{
		Number:        121,
		PaymentStatus: &paid,
	}))

	stored, err := f.svc.FindByNumber(ctx, 121)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, "aCompany", stored.CompanyName)
	assert.Equal(t, testToday, stored.LastModifiedDate)
	// Items and total cost are never mutated by update.
	assert.True(t, stored.TotalCost.Equal(money("130.00")), stored.TotalCost.String())
	assert.Len(t, stored.Items, 1)
	assert.Equal(t, created, stored.CreationDate)
}

func TestDeleteExpired(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	oldDate := testToday.AddDate(-2, 0, 0)
	recentDate := testToday.AddDate(0, -1, 0)

	// Older than a year and paid: swept.
	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:        201,
		CreationDate:  &oldDate,
		CompanyName:   "aCompany",
		PaymentStatus: domain.PaymentStatusPaid,
		Items: []itemdomain.Item{
			{Description: "archived work", Quantity: 2, TotalFee: money("50.00")},
		},
	})
	require.NoError(t, err)

	// Older than a year but unpaid: retained.
	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:       202,
		CreationDate: &oldDate,
		CompanyName:  "aCompany",
	})
	require.NoError(t, err)

	// Paid but recent: retained.
	_, err = f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:        203,
		CreationDate:  &recentDate,
		CompanyName:   "aCompany",
		PaymentStatus: domain.PaymentStatusPaid,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteExpired(ctx))

	swept, err := f.svc.FindByNumber(ctx, 201)
	require.NoError(t, err)
	assert.Nil(t, swept)

	for _, number := range []int64{202, 203} {
		kept, err := f.svc.FindByNumber(ctx, number)
		require.NoError(t, err)
		assert.NotNil(t, kept, "invoice %d should be retained", number)
	}

	// The swept invoice's item was detached before deletion.
	var detached int64
	require.NoError(t, f.db.Model(&itemdomain.Item{}).
		Where("invoice_id IS NULL").
		Count(&detached).Error)
	assert.Equal(t, int64(1), detached)
}

func TestDeleteExpiredCutoffIsStrict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Exactly one year old is not strictly before the cutoff.
	boundary := testToday.AddDate(-1, 0, 0)
	_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
		Number:        301,
		CreationDate:  &boundary,
		CompanyName:   "aCompany",
		PaymentStatus: domain.PaymentStatusPaid,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteExpired(ctx))

	kept, err := f.svc.FindByNumber(ctx, 301)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestFindUnpaidByCompany(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	companySvc := companyservice.New(companyservice.Params{
		DB:   f.db,
		Log:  zap.NewNop(),
		Repo: companyrepository.Provide(),
	})
	require.NoError(t, companySvc.Create(ctx, companydomain.Company{CompanyName: "bCompany"}))

	seeds := []struct {
		number  int64
		company string
		status  domain.PaymentStatus
		age     int
	}{
		{401, "aCompany", domain.PaymentStatusUnpaid, -4},
		{402, "aCompany", domain.PaymentStatusPaid, -3},
		{403, "bCompany", domain.PaymentStatusUnpaid, -2},
		{404, "aCompany", domain.PaymentStatusUnpaid, -1},
	}
	for _, seed := range seeds {
		date := testToday.AddDate(0, 0, seed.age)
		_, err := f.svc.Create(ctx, domain.CreateInvoiceRequest{
			Number:        seed.number,
			CreationDate:  &date,
			CompanyName:   seed.company,
			PaymentStatus: seed.status,
		})
		require.NoError(t, err)
	}

	unpaid, err := f.svc.FindUnpaidByCompany(ctx, "aCompany", pagination.Pagination{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, unpaid, 2)
	assert.Equal(t, int64(401), unpaid[0].Number)
	assert.Equal(t, int64(404), unpaid[1].Number)
}
