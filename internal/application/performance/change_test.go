package performance_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

func pending(po string) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{
		PONumber:             po,
		VendorCode:           "V1",
		Quantity:             3,
		Status:               entity.POStatusPending,
		IssueDate:            t0,
		ExpectedDeliveryDate: t0.Add(72 * time.Hour),
	}
}

func clone(po *entity.PurchaseOrder) *entity.PurchaseOrder {
	cp := *po
	return &cp
}

func TestAffectedMetrics_CreacionPendienteSoloFulfillment(t *testing.T) {
	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderCreated, VendorCode: "V1", After: pending("P1")})
	assert.Equal(t, []rules.Metric{rules.FulfillmentRate}, set.Metrics())
}

func TestAffectedMetrics_PasoACompleteRecalculaPuntualidadYCalidad(t *testing.T) {
	before := pending("P1")
	after := clone(before)
	after.Status = entity.POStatusComplete
	after.FinalDeliveryDate = ptrTime(t0.Add(24 * time.Hour))

	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	assert.Equal(t, []rules.Metric{rules.OnTimeDeliveryRate, rules.QualityRatingAvg, rules.FulfillmentRate}, set.Metrics())
}

func TestAffectedMetrics_DejarDeSerCompleteRecalculaPuntualidad(t *testing.T) {
	before := completed("P1", "V1", t0, t0, nil)
	after := clone(before)
	after.Status = entity.POStatusIncomplete
	after.FinalDeliveryDate = nil

	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	assert.True(t, set.Has(rules.OnTimeDeliveryRate))
	assert.False(t, set.Has(rules.QualityRatingAvg))
}

func TestAffectedMetrics_CalificacionCambiadaRecalculaCalidad(t *testing.T) {
	before := pending("P1")
	after := clone(before)
	after.QualityRating = ptrFloat(7)

	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	assert.Equal(t, []rules.Metric{rules.QualityRatingAvg, rules.FulfillmentRate}, set.Metrics())
}

func TestAffectedMetrics_AcusePresenteRecalculaTiempoDeRespuesta(t *testing.T) {
	before := pending("P1")
	after := clone(before)
	after.AcknowledgmentDate = ptrTime(t0.Add(2 * time.Hour))

	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	assert.Equal(t, []rules.Metric{rules.AverageResponseTime, rules.FulfillmentRate}, set.Metrics())
}

func TestAffectedMetrics_AcuseBorradoRecalculaTiempoDeRespuesta(t *testing.T) {
	before := pending("P1")
	before.AcknowledgmentDate = ptrTime(t0.Add(time.Hour))
	after := clone(before)
	after.AcknowledgmentDate = nil

	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	assert.True(t, set.Has(rules.AverageResponseTime))
}

func TestAffectedMetrics_BorradoRecalculaTodas(t *testing.T) {
	set := performance.AffectedMetrics(performance.OrderChange{Kind: performance.OrderDeleted, VendorCode: "V1", Before: pending("P1")})
	assert.Equal(t, rules.FullSet(), set)
}

func TestTrigger_EscenarioCompleto(t *testing.T) {
	store := newMemStore()
	store.addVendor("V1")
	trigger := performance.NewTrigger(newEngine(store), zerolog.Nop())
	ctx := context.Background()

	// Alta de tres órdenes pendientes: fulfillment sigue en 0, sin fotos.
	for _, n := range []string{"P1", "P2", "P3"} {
		po := pending(n)
		store.putOrder(po)
		out, err := trigger.OnOrderChange(ctx, performance.OrderChange{Kind: performance.OrderCreated, VendorCode: "V1", After: po})
		require.NoError(t, err)
		assert.False(t, out.HasChanges())
	}
	assert.Empty(t, store.historyFor("V1"))

	// P1 se completa a tiempo y calificada.
	before := pending("P1")
	after := clone(before)
	after.Status = entity.POStatusComplete
	after.FinalDeliveryDate = ptrTime(t0.Add(24 * time.Hour))
	after.QualityRating = ptrFloat(9)
	store.putOrder(after)
	out, err := trigger.OnOrderChange(ctx, performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: "V1", Before: before, After: after})
	require.NoError(t, err)
	require.NotNil(t, out.Snapshot)

	v := store.vendor("V1")
	assert.Equal(t, 100.0, v.Metrics.OnTimeDeliveryRate)
	assert.Equal(t, 9.0, v.Metrics.QualityRatingAvg)
	assert.InDelta(t, 100.0/3, v.Metrics.FulfillmentRate, 1e-9)
	assert.Len(t, store.historyFor("V1"), 1)

	// Borrar P1 regresa todo a 0.
	store.deleteOrder("P1")
	_, err = trigger.OnOrderChange(ctx, performance.OrderChange{Kind: performance.OrderDeleted, VendorCode: "V1", Before: after})
	require.NoError(t, err)
	assert.Equal(t, entity.Metrics{}, store.vendor("V1").Metrics)
	assert.Len(t, store.historyFor("V1"), 2)
}
