package performance

import "github.com/jhoicas/Proveedores-api/internal/domain/entity"

const secondsPerHour = 3600.0

// Compute calcula el valor actual de la métrica m sobre todas las órdenes del proveedor.
func Compute(m Metric, orders []*entity.PurchaseOrder) float64 {
	switch m {
	case OnTimeDeliveryRate:
		return OnTimeRate(orders)
	case QualityRatingAvg:
		return QualityAverage(orders)
	case AverageResponseTime:
		return ResponseTimeHours(orders)
	case FulfillmentRate:
		return FulfillmentPct(orders)
	}
	return 0
}

// OnTimeRate porcentaje de órdenes complete cuya entrega final fue <= la fecha esperada.
// Denominador = órdenes complete. Una orden complete sin fecha de entrega cuenta como no puntual.
func OnTimeRate(orders []*entity.PurchaseOrder) float64 {
	var completed, onTime int
	for _, po := range orders {
		if !po.IsComplete() {
			continue
		}
		completed++
		if po.FinalDeliveryDate != nil && !po.FinalDeliveryDate.After(po.ExpectedDeliveryDate) {
			onTime++
		}
	}
	if completed == 0 {
		return 0
	}
	return float64(onTime) / float64(completed) * 100
}

// QualityAverage promedio aritmético de quality_rating sobre las órdenes calificadas (cualquier estado).
func QualityAverage(orders []*entity.PurchaseOrder) float64 {
	var sum float64
	var n int
	for _, po := range orders {
		if po.QualityRating == nil {
			continue
		}
		sum += *po.QualityRating
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ResponseTimeHours promedio en horas de (acknowledgment_date - issue_date) sobre las órdenes con acuse.
// Usa diferencia de reloj: segundos transcurridos / 3600.
func ResponseTimeHours(orders []*entity.PurchaseOrder) float64 {
	var seconds float64
	var n int
	for _, po := range orders {
		if po.AcknowledgmentDate == nil {
			continue
		}
		seconds += po.AcknowledgmentDate.Sub(po.IssueDate).Seconds()
		n++
	}
	if n == 0 {
		return 0
	}
	return seconds / float64(n) / secondsPerHour
}

// FulfillmentPct porcentaje de todas las órdenes que están complete y tienen calificación.
// Denominador = total de órdenes del proveedor.
func FulfillmentPct(orders []*entity.PurchaseOrder) float64 {
	if len(orders) == 0 {
		return 0
	}
	var fulfilled int
	for _, po := range orders {
		if po.IsComplete() && po.QualityRating != nil {
			fulfilled++
		}
	}
	return float64(fulfilled) / float64(len(orders)) * 100
}
