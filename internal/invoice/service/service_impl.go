package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicify/internal/clock"
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
	"github.com/smallbiznis/invoicify/internal/invoice/domain"
	"github.com/smallbiznis/invoicify/pkg/db"
	"github.com/smallbiznis/invoicify/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Companies companydomain.Service
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	companies companydomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		companies: p.Companies,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	if req.Number <= 0 {
		return domain.Invoice{}, domain.ErrInvalidNumber
	}

	status := req.PaymentStatus
	if status == "" {
		status = domain.PaymentStatusUnpaid
	}
	if !status.Valid() {
		return domain.Invoice{}, domain.ErrInvalidStatus
	}

	existing, err := s.repo.FindByNumber(ctx, s.db, req.Number)
	if err != nil {
		return domain.Invoice{}, err
	}
	if existing != nil {
		return domain.Invoice{}, domain.ErrExists
	}

	companyName := strings.TrimSpace(req.CompanyName)
	company, err := s.companies.FetchByName(ctx, companyName)
	if err != nil {
		return domain.Invoice{}, err
	}
	if company == nil {
		return domain.Invoice{}, domain.ErrCompanyMissing
	}

	creationDate := clock.Today(s.clock)
	if req.CreationDate != nil {
		creationDate = *req.CreationDate
	}

	invoice := domain.Invoice{
		ID:               s.genID.Generate(),
		Number:           req.Number,
		CreationDate:     creationDate,
		LastModifiedDate: creationDate,
		CompanyName:      companyName,
		PaymentStatus:    status,
		TotalCost:        domain.TotalCost(req.TotalCost, req.Items),
		Items:            req.Items,
	}
	for i := range invoice.Items {
		invoice.Items[i].ID = s.genID.Generate()
		invoice.Items[i].InvoiceID = &invoice.ID
	}

	if err := s.repo.Insert(ctx, s.db, &invoice); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Invoice{}, domain.ErrExists
		}
		return domain.Invoice{}, err
	}

	s.log.Info("invoice created",
		zap.Int64("number", invoice.Number),
		zap.String("company_name", invoice.CompanyName),
		zap.String("total_cost", invoice.TotalCost.String()),
	)
	return invoice, nil
}

func (s *Service) List(ctx context.Context, page pagination.Pagination) ([]domain.Invoice, error) {
	invoices, err := s.repo.List(ctx, s.db, page.Normalize())
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}

func (s *Service) FindByNumber(ctx context.Context, number int64) (*domain.Invoice, error) {
	return s.repo.FindByNumber(ctx, s.db, number)
}

func (s *Service) Update(ctx context.Context, req domain.UpdateInvoiceRequest) error {
	invoice, err := s.repo.FindByNumber(ctx, s.db, req.Number)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}

	invoice.LastModifiedDate = clock.Today(s.clock)
	if req.CompanyName != nil {
		invoice.CompanyName = *req.CompanyName
	}
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.Valid() {
			return domain.ErrInvalidStatus
		}
		invoice.PaymentStatus = *req.PaymentStatus
	}

	if err := s.repo.Save(ctx, s.db, invoice); err != nil {
		return err
	}

	s.log.Info("invoice updated", zap.Int64("number", invoice.Number))
	return nil
}

// DeleteExpired removes invoices created strictly more than a year before
// today whose status is PAID. Items are detached inside the same
// transaction before the parent row is deleted.
func (s *Service) DeleteExpired(ctx context.Context) error {
	cutoff := clock.Today(s.clock).AddDate(-1, 0, 0)

	var deleted int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		expired, err := s.repo.FindExpired(ctx, tx, cutoff, domain.PaymentStatusPaid)
		if err != nil {
			return err
		}
		for _, invoice := range expired {
			if err := s.repo.DetachItems(ctx, tx, invoice.ID); err != nil {
				return err
			}
			if err := s.repo.Delete(ctx, tx, invoice.ID); err != nil {
				return err
			}
		}
		deleted = len(expired)
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("retention sweep completed",
		zap.Time("cutoff", cutoff),
		zap.Int("deleted", deleted),
	)
	return nil
}

func (s *Service) FindUnpaidByCompany(ctx context.Context, companyName string, page pagination.Pagination) ([]domain.Invoice, error) {
	invoices, err := s.repo.ListByCompanyAndStatus(ctx, s.db, companyName, domain.PaymentStatusUnpaid, page.Normalize())
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, nil
}
