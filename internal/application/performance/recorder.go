package performance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// Recorder anexa fotos de las métricas al historial. Solo lo invoca el Engine.
type Recorder struct {
	newID func() string
}

// NewRecorder construye el recorder con IDs uuid.
func NewRecorder() *Recorder {
	return &Recorder{newID: func() string { return uuid.New().String() }}
}

// Append registra las cuatro métricas actuales del proveedor con fecha at.
// Debe llamarse con el repo atado a la misma tx que actualizó las métricas.
func (r *Recorder) Append(
	ctx context.Context,
	historyRepo repository.HistoricalPerformanceRepository,
	vendor *entity.Vendor,
	at time.Time,
) (*entity.HistoricalPerformance, error) {
	snapshot := &entity.HistoricalPerformance{
		ID:         r.newID(),
		VendorCode: vendor.VendorCode,
		Date:       at,
		Metrics:    vendor.Metrics,
	}
	if err := historyRepo.Append(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}
