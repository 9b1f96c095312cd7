// Package metrics exposes Prometheus metrics for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "argo"

// Provider владеет реестром и всеми метриками сервиса
type Provider struct {
	reg *prometheus.Registry

	WarehouseQueries  *prometheus.HistogramVec
	WarehouseRows     *prometheus.HistogramVec
	CacheLookups      *prometheus.CounterVec
	HTTPRequests      *prometheus.HistogramVec
	FilterValidations *prometheus.CounterVec
}

// New создаёт реестр со стандартными Go/process коллекторами
func New() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &Provider{
		reg: reg,
		WarehouseQueries: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "warehouse_query_duration_seconds",
			Help:      "Warehouse query latency by driver and outcome.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"driver", "status"}),
		WarehouseRows: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "warehouse_rows_returned",
			Help:      "Rows returned per warehouse query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"driver"}),
		CacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_cache_lookups_total",
			Help:      "Query cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		HTTPRequests: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		FilterValidations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_validation_failures_total",
			Help:      "Rejected filter requests by field.",
		}, []string{"field"}),
	}
}

// Handler отдаёт метрики в формате Prometheus
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

// Registerer нужен для регистрации внешних коллекторов
func (p *Provider) Registerer() prometheus.Registerer { return p.reg }

// ObserveQuery записывает длительность и число строк одного запроса
func (p *Provider) ObserveQuery(driver string, started time.Time, rows int, err error) {
	if p == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.WarehouseQueries.WithLabelValues(driver, status).Observe(time.Since(started).Seconds())
	if err == nil {
		p.WarehouseRows.WithLabelValues(driver).Observe(float64(rows))
	}
}

// CacheResult увеличивает счётчик обращений к кешу
func (p *Provider) CacheResult(result string) {
	if p == nil {
		return
	}
	p.CacheLookups.WithLabelValues(result).Inc()
}

// ValidationFailed учитывает отклонённое поле фильтра
func (p *Provider) ValidationFailed(field string) {
	if p == nil {
		return
	}
	p.FilterValidations.WithLabelValues(field).Inc()
}

// ObserveHTTP записывает длительность обработки HTTP запроса
func (p *Provider) ObserveHTTP(method, route string, status int, started time.Time) {
	if p == nil {
		return
	}
	p.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(started).Seconds())
}
