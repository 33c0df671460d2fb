package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/invoicify/internal/config"
	companydomain "github.com/smallbiznis/invoicify/internal/company/domain"
	invoicedomain "github.com/smallbiznis/invoicify/internal/invoice/domain"
	itemdomain "github.com/smallbiznis/invoicify/internal/item/domain"
	obslogger "github.com/smallbiznis/invoicify/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/invoicify/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the gin engine, the route surface and the HTTP lifecycle.
var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with recovery, request logging, metrics
// and error mapping middleware plus the operational endpoints.
func NewEngine(log *zap.Logger, reg *prometheus.Registry, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	companySvc companydomain.Service
	invoiceSvc invoicedomain.Service
	itemSvc    itemdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	CompanySvc companydomain.Service
	InvoiceSvc invoicedomain.Service
	ItemSvc    itemdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		companySvc: p.CompanySvc,
		invoiceSvc: p.InvoiceSvc,
		itemSvc:    p.ItemSvc,
	}

	svc.registerRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	company := s.engine.Group("/company")
	{
		company.GET("", s.ListCompanies)
		company.GET("/summary", s.ListCompanySummaries)
		company.POST("", s.CreateCompany)
		company.PUT("/:companyName", s.UpdateCompany)
	}

	invoices := s.engine.Group("/invoices")
	{
		invoices.POST("", s.CreateInvoice)
		invoices.GET("", s.ListInvoices)
		invoices.GET("/summary", s.ListInvoiceSummaries)
		invoices.GET("/search/:number", s.SearchInvoices)
		invoices.PUT("", s.UpdateInvoice)
		invoices.DELETE("", s.DeleteExpiredInvoices)
		invoices.GET("/unpaid/:companyName", s.ListUnpaidInvoices)
		invoices.GET("/summary/unpaid/:companyName", s.ListUnpaidInvoiceSummaries)
	}

	items := s.engine.Group("/items")
	{
		items.GET("", s.ListItems)
		items.POST("", s.CreateItem)
	}
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
