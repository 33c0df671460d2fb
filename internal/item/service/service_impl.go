package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicify/internal/clock"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	"github.com/smallbiznis/invoicify/internal/item/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Invoices invoicedomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	invoices invoicedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("item.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		invoices: p.Invoices,
	}
}

// Create attaches a line item to an existing invoice. The fee increment,
// the invoice's last-modified refresh and the item insert commit together
// or not at all.
func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (snowflake.ID, error) {
	item := domain.Item{
		ID:          s.genID.Generate(),
		Description: req.Description,
		Quantity:    req.Quantity,
		TotalFee:    req.TotalFee,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.invoices.FindByNumber(ctx, tx, req.InvoiceNumber)
		if err != nil {
			return err
		}
		if invoice == nil {
			return invoicedomain.ErrNotFound
		}

		invoice.LastModifiedDate = clock.Today(s.clock)
		invoice.TotalCost = invoicedomain.TotalCost(invoice.TotalCost, []domain.Item{item})
		if err := s.invoices.Save(ctx, tx, invoice); err != nil {
			return err
		}

		item.InvoiceID = &invoice.ID
		return s.repo.Insert(ctx, tx, &item)
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("item created",
		zap.Int64("invoice_number", req.InvoiceNumber),
		zap.String("total_fee", item.TotalFee.String()),
	)
	return item.ID, nil
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.ItemView, error) {
	views, err := s.repo.FindAllViews(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []domain.ItemView{}
	}
	return views, nil
}
