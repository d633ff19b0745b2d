package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/infrastructure/metrics"
)

func TestObserveRecompute_CuentaPorMetricaYResultado(t *testing.T) {
	c := metrics.New("test")
	out := &performance.Outcome{
		VendorCode: "V1",
		Changed:    []rules.Metric{rules.FulfillmentRate},
		Snapshot:   &entity.HistoricalPerformance{ID: "h1"},
	}
	c.ObserveRecompute(rules.SetOf(rules.OnTimeDeliveryRate, rules.FulfillmentRate), out, nil, 10*time.Millisecond)
	c.ObserveRecompute(rules.SetOf(rules.QualityRatingAvg), nil, errors.New("db"), time.Millisecond)

	expected := `
# HELP test_recomputations_total Recálculos de métricas por métrica y resultado
# TYPE test_recomputations_total counter
test_recomputations_total{metric="fulfillment_rate",result="changed"} 1
test_recomputations_total{metric="on_time_delivery_rate",result="unchanged"} 1
test_recomputations_total{metric="quality_rating_avg",result="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected), "test_recomputations_total"))

	expectedSnapshots := `
# HELP test_snapshots_total Fotos anexadas al historial de desempeño
# TYPE test_snapshots_total counter
test_snapshots_total 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expectedSnapshots), "test_snapshots_total"))
}

func TestHandler_ExponeMetricasHTTP(t *testing.T) {
	c := metrics.New("test")
	app := fiber.New()
	app.Use(c.Middleware())
	app.Get("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
	app.Get("/metrics", c.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",path="/ping",status="200"} 1`)
}
