package migration

import (
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
	"github.com/smallbiznis/invoicify/internal/config"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module runs schema migrations at startup. The versioned SQL migrations
// carry the unique constraints duplicate detection relies on; AutoMigrate
// covers the mysql/sqlite dialects where the postgres migration driver does
// not apply.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		return conn.AutoMigrate(
			&companydomain.Company{},
			&invoicedomain.Invoice{},
			&itemdomain.Item{},
		)
	}),
)
