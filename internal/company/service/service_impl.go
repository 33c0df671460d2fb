package service

import (
	"context"
	"strings"

	"github.com/smallbiznis/invoicify/internal/company/domain"
	"github.com/smallbiznis/invoicify/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("company.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, company domain.Company) error {
	company.CompanyName = strings.TrimSpace(company.CompanyName)
	if company.CompanyName == "" {
		return domain.ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, s.db, company.CompanyName)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrExists
	}

	if err := s.repo.Insert(ctx, s.db, &company); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.ErrExists
		}
		return err
	}

	s.log.Info("company created", zap.String("company_name", company.CompanyName))
	return nil
}

func (s *Service) FetchAll(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (s *Service) FetchSummaries(ctx context.Context) ([]domain.CompanySummary, error) {
	companies, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CompanySummary, 0, len(companies))
	for _, company := range companies {
		summaries = append(summaries, domain.CompanySummary{
			CompanyName: company.CompanyName,
			City:        company.Address.City,
			State:       company.Address.State,
		})
	}
	return summaries, nil
}

func (s *Service) FetchByName(ctx context.Context, name string) (*domain.Company, error) {
	return s.repo.FindByName(ctx, s.db, name)
}

// Update merges non-nil fields of req onto the stored company. A payload
// whose companyName does not match name case-insensitively is a deliberate
// no-op, not an error; the name itself is immutable.
func (s *Service) Update(ctx context.Context, name string, req domain.UpdateCompanyRequest) error {
	if req.CompanyName == nil || !strings.EqualFold(name, *req.CompanyName) {
		return nil
	}

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	applyString(&existing.Address.Street, req.Street)
	applyString(&existing.Address.City, req.City)
	applyString(&existing.Address.State, req.State)
	applyString(&existing.Address.ZipCode, req.ZipCode)
	applyString(&existing.ContactName, req.ContactName)
	applyString(&existing.Title, req.Title)
	applyString(&existing.PhoneNumber, req.PhoneNumber)

	if err := s.repo.Save(ctx, s.db, existing); err != nil {
		return err
	}

	s.log.Info("company updated", zap.String("company_name", name))
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
