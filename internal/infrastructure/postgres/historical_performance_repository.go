package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

var _ repository.HistoricalPerformanceRepository = (*HistoricalPerformanceRepo)(nil)

// HistoricalPerformanceRepo historial de métricas sobre PostgreSQL. Solo se anexa; nunca se edita.
type HistoricalPerformanceRepo struct {
	db Querier
}

// NewHistoricalPerformanceRepository construye el adaptador; db puede ser el pool o una tx.
func NewHistoricalPerformanceRepository(db Querier) *HistoricalPerformanceRepo {
	return &HistoricalPerformanceRepo{db: db}
}

// Append anexa una foto.
func (r *HistoricalPerformanceRepo) Append(ctx context.Context, h *entity.HistoricalPerformance) error {
	query := `
		INSERT INTO historical_performances (id, vendor_code, date,
			on_time_delivery_rate, quality_rating_avg, average_response_time, fulfillment_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		h.ID, h.VendorCode, h.Date,
		h.Metrics.OnTimeDeliveryRate, h.Metrics.QualityRatingAvg, h.Metrics.AverageResponseTime, h.Metrics.FulfillmentRate,
	)
	if err != nil {
		return fmt.Errorf("insert historical performance: %w", err)
	}
	return nil
}

// ListByVendor lista las fotos del proveedor en [from, to], más recientes primero.
// from y to son opcionales.
func (r *HistoricalPerformanceRepo) ListByVendor(
	ctx context.Context,
	vendorCode string,
	from, to *time.Time,
	limit, offset int,
) ([]*entity.HistoricalPerformance, error) {
	query := `
		SELECT id, vendor_code, date,
			on_time_delivery_rate, quality_rating_avg, average_response_time, fulfillment_rate
		FROM historical_performances
		WHERE vendor_code = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC, seq DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(ctx, query, vendorCode, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list historical performance: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoricalPerformance
	for rows.Next() {
		var h entity.HistoricalPerformance
		if err := rows.Scan(&h.ID, &h.VendorCode, &h.Date,
			&h.Metrics.OnTimeDeliveryRate, &h.Metrics.QualityRatingAvg, &h.Metrics.AverageResponseTime, &h.Metrics.FulfillmentRate,
		); err != nil {
			return nil, fmt.Errorf("scan historical performance: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// DeleteByVendor borra todo el historial del proveedor y devuelve cuántas filas eliminó.
func (r *HistoricalPerformanceRepo) DeleteByVendor(ctx context.Context, vendorCode string) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM historical_performances WHERE vendor_code = $1`, vendorCode)
	if err != nil {
		return 0, fmt.Errorf("delete historical performance: %w", err)
	}
	return cmd.RowsAffected(), nil
}
