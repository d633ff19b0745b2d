// Package performance orquesta el recálculo de métricas de proveedores: serializa por proveedor,
// recalcula desde todas las órdenes, persiste el resultado y anexa la foto al historial
// en una sola transacción.
package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// Outcome resultado de un recálculo.
type Outcome struct {
	VendorCode string
	// Metrics valores del proveedor tras el recálculo.
	Metrics entity.Metrics
	// Changed métricas cuyo valor cambió, en orden de despacho.
	Changed []rules.Metric
	// Snapshot foto anexada al historial; nil si nada cambió.
	Snapshot *entity.HistoricalPerformance
}

// HasChanges indica si el recálculo modificó alguna métrica.
func (o *Outcome) HasChanges() bool { return len(o.Changed) > 0 }

// Engine motor de recálculo de métricas.
type Engine struct {
	txRunner TxRunner
	locker   VendorLocker
	recorder *Recorder
	observer Observer
	log      zerolog.Logger
	now      func() time.Time
}

// Option configura el Engine.
type Option func(*Engine)

// WithObserver registra un observador de recálculos.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithLogger asigna el logger estructurado.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine construye el motor.
func NewEngine(txRunner TxRunner, locker VendorLocker, recorder *Recorder, opts ...Option) *Engine {
	e := &Engine{
		txRunner: txRunner,
		locker:   locker,
		recorder: recorder,
		observer: nopObserver{},
		log:      zerolog.Nop(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UpdateOnTimeDeliveryRate recalcula el porcentaje de entregas puntuales.
func (e *Engine) UpdateOnTimeDeliveryRate(ctx context.Context, vendorCode string) (*Outcome, error) {
	return e.Recompute(ctx, vendorCode, rules.SetOf(rules.OnTimeDeliveryRate))
}

// UpdateQualityRatingAvg recalcula el promedio de calificaciones de calidad.
func (e *Engine) UpdateQualityRatingAvg(ctx context.Context, vendorCode string) (*Outcome, error) {
	return e.Recompute(ctx, vendorCode, rules.SetOf(rules.QualityRatingAvg))
}

// UpdateAverageResponseTime recalcula el tiempo medio de acuse en horas.
func (e *Engine) UpdateAverageResponseTime(ctx context.Context, vendorCode string) (*Outcome, error) {
	return e.Recompute(ctx, vendorCode, rules.SetOf(rules.AverageResponseTime))
}

// UpdateFulfillmentRate recalcula el porcentaje de órdenes cumplidas.
func (e *Engine) UpdateFulfillmentRate(ctx context.Context, vendorCode string) (*Outcome, error) {
	return e.Recompute(ctx, vendorCode, rules.SetOf(rules.FulfillmentRate))
}

// Recompute recalcula las métricas de set desde todas las órdenes del proveedor.
// Si algún valor cambió, escribe el proveedor una vez y anexa exactamente una foto con
// los cuatro valores actuales. Si nada cambió no escribe ni anexa (idempotente).
// Devuelve domain.ErrNotFound si el proveedor no existe.
func (e *Engine) Recompute(ctx context.Context, vendorCode string, set rules.MetricSet) (*Outcome, error) {
	start := time.Now()
	out, err := e.recompute(ctx, vendorCode, set)
	e.observer.ObserveRecompute(set, out, err, time.Since(start))

	if err != nil {
		e.log.Error().Err(err).Str("vendor_code", vendorCode).Msg("recálculo de métricas fallido")
		return nil, err
	}
	if out.HasChanges() {
		ev := e.log.Info().Str("vendor_code", vendorCode).Int("changed", len(out.Changed))
		for _, m := range out.Changed {
			ev = ev.Float64(m.String(), rules.Value(out.Metrics, m))
		}
		ev.Msg("métricas actualizadas")
	} else {
		e.log.Debug().Str("vendor_code", vendorCode).Msg("métricas sin cambios")
	}
	return out, nil
}

func (e *Engine) recompute(ctx context.Context, vendorCode string, set rules.MetricSet) (*Outcome, error) {
	unlock, err := e.locker.Lock(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var out *Outcome
	err = e.txRunner.RunPerformance(ctx, func(
		vendorRepo repository.VendorRepository,
		orderRepo repository.PurchaseOrderRepository,
		historyRepo repository.HistoricalPerformanceRepository,
	) error {
		vendor, err := vendorRepo.GetForUpdate(ctx, vendorCode)
		if err != nil {
			return err
		}
		if vendor == nil {
			return domain.ErrNotFound
		}
		orders, err := orderRepo.ListByVendor(ctx, vendorCode)
		if err != nil {
			return err
		}

		next := vendor.Metrics
		var changed []rules.Metric
		for _, m := range set.Metrics() {
			v := rules.Compute(m, orders)
			if v != rules.Value(next, m) {
				next = rules.WithValue(next, m, v)
				changed = append(changed, m)
			}
		}
		out = &Outcome{VendorCode: vendorCode, Metrics: next, Changed: changed}
		if len(changed) == 0 {
			return nil
		}

		at := e.now()
		if err := vendorRepo.UpdateMetrics(ctx, vendorCode, next, at); err != nil {
			return fmt.Errorf("actualizar métricas: %w", err)
		}
		vendor.Metrics = next
		vendor.UpdatedAt = at
		snapshot, err := e.recorder.Append(ctx, historyRepo, vendor, at)
		if err != nil {
			return fmt.Errorf("anexar historial: %w", err)
		}
		out.Snapshot = snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
