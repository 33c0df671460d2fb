package repository

import (
	"context"

	"github.com/smallbiznis/invoicify/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO companies (company_name, street, city, state, zip, contact_name, title, phone_number)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		company.CompanyName,
		company.Address.Street,
		company.Address.City,
		company.Address.State,
		company.Address.ZipCode,
		company.ContactName,
		company.Title,
		company.PhoneNumber,
	).Error
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, company *domain.Company) error {
	return db.WithContext(ctx).Save(company).Error
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Company, error) {
	var company domain.Company
	err := db.WithContext(ctx).
		Where("company_name = ?", name).
		First(&company).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var companies []domain.Company
	err := db.WithContext(ctx).
		Order("company_name asc").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
