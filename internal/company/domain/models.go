// Package domain contains the company directory models and contracts.
package domain

// Address is the embedded postal address of a company.
type Address struct {
	Street  string `gorm:"column:street" json:"street"`
	City    string `gorm:"column:city" json:"city"`
	State   string `gorm:"column:state" json:"state"`
	ZipCode string `gorm:"column:zip" json:"zipCode"`
}

// Company is a billing counterparty. The name is the primary key; companies
// are referenced by invoices but never deleted.
type Company struct {
	CompanyName string  `gorm:"primaryKey;column:company_name" json:"companyName"`
	Address     Address `gorm:"embedded" json:"address"`
	ContactName string  `gorm:"column:contact_name" json:"contactName"`
	Title       string  `gorm:"column:title" json:"title"`
	PhoneNumber string  `gorm:"column:phone_number" json:"phoneNumber"`
}

// TableName sets the database table name.
func (Company) TableName() string { return "companies" }

// CompanySummary is the reduced list-display projection.
type CompanySummary struct {
	CompanyName string `json:"companyName"`
	City        string `json:"city"`
	State       string `json:"state"`
}
