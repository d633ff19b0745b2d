package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
)

// HistoricalPerformanceRepository puerto del historial de métricas (solo anexar desde el motor).
type HistoricalPerformanceRepository interface {
	Append(ctx context.Context, snapshot *entity.HistoricalPerformance) error
	ListByVendor(ctx context.Context, vendorCode string, from, to *time.Time, limit, offset int) ([]*entity.HistoricalPerformance, error)
	// DeleteByVendor es una operación administrativa; el motor nunca la invoca.
	DeleteByVendor(ctx context.Context, vendorCode string) (int64, error)
}
