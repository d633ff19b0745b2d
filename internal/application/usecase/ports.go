package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

// Recomputer recálculo explícito de métricas (lo implementa performance.Engine).
type Recomputer interface {
	Recompute(ctx context.Context, vendorCode string, set rules.MetricSet) (*performance.Outcome, error)
}

// OrderChangeNotifier recibe cada escritura confirmada de órdenes (lo implementa performance.Trigger).
type OrderChangeNotifier interface {
	OnOrderChange(ctx context.Context, ch performance.OrderChange) (*performance.Outcome, error)
}

// Scorecard datos del reporte de desempeño de un proveedor.
type Scorecard struct {
	Vendor         *entity.Vendor
	Performance    dto.PerformanceResponse
	History        []*entity.HistoricalPerformance // más recientes primero
	OrdersByStatus map[string]int
	TotalOrders    int
	GeneratedAt    time.Time
}

// ScorecardGenerator renderiza el scorecard (PDF en producción).
type ScorecardGenerator interface {
	GenerateScorecard(ctx context.Context, card *Scorecard) ([]byte, error)
}

// HistoryExporter exporta el historial a hoja de cálculo (XLSX en producción).
type HistoryExporter interface {
	ExportHistory(ctx context.Context, vendor *entity.Vendor, history []*entity.HistoricalPerformance) ([]byte, error)
}
