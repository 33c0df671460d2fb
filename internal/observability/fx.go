package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/smallbiznis/invoicify/internal/observability/metrics"
	"go.uber.org/fx"
)

// Module provides the metrics registry and HTTP instruments.
var Module = fx.Module("observability",
	fx.Provide(NewRegistry),
	fx.Provide(func(reg *prometheus.Registry) (*metrics.HTTPMetrics, error) {
		return metrics.New(reg)
	}),
)

// NewRegistry builds the process-wide prometheus registry.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
