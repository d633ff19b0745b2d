package performance

import (
	"context"

	"github.com/rs/zerolog"

	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

// Recomputer lo implementa Engine.
type Recomputer interface {
	Recompute(ctx context.Context, vendorCode string, set rules.MetricSet) (*Outcome, error)
}

// Trigger traduce cambios de órdenes en recálculos del motor.
type Trigger struct {
	engine Recomputer
	log    zerolog.Logger
}

// NewTrigger construye la capa de disparo.
func NewTrigger(engine Recomputer, log zerolog.Logger) *Trigger {
	return &Trigger{engine: engine, log: log}
}

// OnOrderChange recalcula las métricas afectadas por ch en una sola pasada.
// Se invoca después de confirmar la escritura de la orden.
func (t *Trigger) OnOrderChange(ctx context.Context, ch OrderChange) (*Outcome, error) {
	set := AffectedMetrics(ch)
	t.log.Debug().
		Str("vendor_code", ch.VendorCode).
		Str("change", ch.Kind.String()).
		Int("metrics", len(set.Metrics())).
		Msg("disparando recálculo")
	return t.engine.Recompute(ctx, ch.VendorCode, set)
}
