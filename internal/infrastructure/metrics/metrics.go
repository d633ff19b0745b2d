// Package metrics expone contadores Prometheus del motor de recálculo y del API HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

var _ performance.Observer = (*Collector)(nil)

// Resultados posibles de un recálculo por métrica.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
	ResultError     = "error"
)

// Collector agrupa los colectores y el registry donde están dados de alta.
type Collector struct {
	registry *prometheus.Registry

	recomputations  *prometheus.CounterVec
	snapshots       prometheus.Counter
	recomputeTime   prometheus.Histogram
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New crea y registra los colectores con el prefijo dado (METRICS_PREFIX).
func New(prefix string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		recomputations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: prefix,
				Name:      "recomputations_total",
				Help:      "Recálculos de métricas por métrica y resultado",
			},
			[]string{"metric", "result"},
		),
		snapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: prefix,
			Name:      "snapshots_total",
			Help:      "Fotos anexadas al historial de desempeño",
		}),
		recomputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: prefix,
			Name:      "recompute_duration_seconds",
			Help:      "Duración de cada recálculo (candado + transacción)",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: prefix,
				Name:      "http_requests_total",
				Help:      "Total de peticiones HTTP",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: prefix,
				Name:      "http_request_duration_seconds",
				Help:      "Duración de peticiones HTTP en segundos",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
	c.registry.MustRegister(
		c.recomputations, c.snapshots, c.recomputeTime, c.requests, c.requestDuration,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRecompute implementa performance.Observer.
func (c *Collector) ObserveRecompute(requested rules.MetricSet, out *performance.Outcome, err error, elapsed time.Duration) {
	c.recomputeTime.Observe(elapsed.Seconds())

	var changed rules.MetricSet
	if out != nil {
		changed = rules.SetOf(out.Changed...)
		if out.Snapshot != nil {
			c.snapshots.Inc()
		}
	}
	for _, m := range requested.Metrics() {
		result := ResultUnchanged
		switch {
		case err != nil:
			result = ResultError
		case changed.Has(m):
			result = ResultChanged
		}
		c.recomputations.WithLabelValues(m.String(), result).Inc()
	}
}

// Middleware cuenta peticiones por ruta registrada (no por URL, para acotar cardinalidad).
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := ctx.Route().Path
		c.requests.WithLabelValues(ctx.Method(), path, strconv.Itoa(status)).Inc()
		c.requestDuration.WithLabelValues(ctx.Method(), path).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve /metrics en formato de exposición Prometheus.
func (c *Collector) Handler() fiber.Handler {
	return adaptor.HTTPHandler(c.httpHandler())
}

func (c *Collector) httpHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry expuesto para tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }
