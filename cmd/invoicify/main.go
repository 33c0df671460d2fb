package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicify/internal/clock"
	"github.com/smallbiznis/invoicify/internal/company"
	"github.com/smallbiznis/invoicify/internal/config"
	"github.com/smallbiznis/invoicify/internal/invoice"
	"github.com/smallbiznis/invoicify/internal/item"
	"github.com/smallbiznis/invoicify/internal/migration"
	"github.com/smallbiznis/invoicify/internal/observability"
	"github.com/smallbiznis/invoicify/internal/server"
	"github.com/smallbiznis/invoicify/pkg/db"
	"github.com/smallbiznis/invoicify/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		observability.Module,

		// Functional domains
		company.Module,
		invoice.Module,
		item.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
