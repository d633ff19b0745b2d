package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceResponse métricas actuales del proveedor redondeadas a 2 decimales.
type PerformanceResponse struct {
	VendorCode          string          `json:"vendor_code"`
	OnTimeDeliveryRate  decimal.Decimal `json:"on_time_delivery_rate" swaggertype:"number"`
	QualityRatingAvg    decimal.Decimal `json:"quality_rating_avg" swaggertype:"number"`
	AverageResponseTime decimal.Decimal `json:"average_response_time" swaggertype:"number"`
	FulfillmentRate     decimal.Decimal `json:"fulfillment_rate" swaggertype:"number"`
}

// RecomputeResponse resultado de un recálculo manual.
type RecomputeResponse struct {
	Performance PerformanceResponse `json:"performance"`
	Changed     []string            `json:"changed"`
	SnapshotID  string              `json:"snapshot_id,omitempty"`
}

// HistoryFilter filtros del historial. El handler completa From/To desde la query.
type HistoryFilter struct {
	From *time.Time `query:"from"`
	To   *time.Time `query:"to"`
	PageRequest
}

// HistoricalPerformanceResponse una foto del historial.
type HistoricalPerformanceResponse struct {
	ID                  string          `json:"id"`
	VendorCode          string          `json:"vendor_code"`
	Date                time.Time       `json:"date"`
	OnTimeDeliveryRate  decimal.Decimal `json:"on_time_delivery_rate" swaggertype:"number"`
	QualityRatingAvg    decimal.Decimal `json:"quality_rating_avg" swaggertype:"number"`
	AverageResponseTime decimal.Decimal `json:"average_response_time" swaggertype:"number"`
	FulfillmentRate     decimal.Decimal `json:"fulfillment_rate" swaggertype:"number"`
}

// HistoryListResponse listado paginado del historial.
type HistoryListResponse struct {
	Items []HistoricalPerformanceResponse `json:"items"`
	Page  PageResponse                    `json:"page"`
}

// DeleteHistoryResponse filas eliminadas por el borrado administrativo.
type DeleteHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}
