package performance

import (
	"context"
	"time"

	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la actualización del proveedor y el registro en el historial sean atómicos.
type TxRunner interface {
	RunPerformance(ctx context.Context, fn func(
		vendorRepo repository.VendorRepository,
		orderRepo repository.PurchaseOrderRepository,
		historyRepo repository.HistoricalPerformanceRepository,
	) error) error
}

// VendorLocker serializa los recálculos de un mismo proveedor.
// Lock bloquea hasta obtener el candado o hasta que ctx termine; unlock es idempotente.
type VendorLocker interface {
	Lock(ctx context.Context, vendorCode string) (unlock func(), err error)
}

// Observer recibe el resultado de cada recálculo (métricas Prometheus en producción).
type Observer interface {
	ObserveRecompute(requested rules.MetricSet, out *Outcome, err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRecompute(rules.MetricSet, *Outcome, error, time.Duration) {}
