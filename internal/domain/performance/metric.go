// Package performance contiene las reglas de dominio de las métricas de desempeño de proveedores.
// Son funciones puras sobre el conjunto de órdenes: no fallan con conjuntos vacíos ni con
// campos opcionales nulos; en esos casos el valor definido es 0.
package performance

import "github.com/jhoicas/Proveedores-api/internal/domain/entity"

// Metric identifica una de las cuatro métricas.
type Metric int

const (
	OnTimeDeliveryRate Metric = iota
	QualityRatingAvg
	AverageResponseTime
	FulfillmentRate
)

// AllMetrics en el orden fijo de despacho (fulfillment siempre al final).
var AllMetrics = []Metric{OnTimeDeliveryRate, QualityRatingAvg, AverageResponseTime, FulfillmentRate}

func (m Metric) String() string {
	switch m {
	case OnTimeDeliveryRate:
		return "on_time_delivery_rate"
	case QualityRatingAvg:
		return "quality_rating_avg"
	case AverageResponseTime:
		return "average_response_time"
	case FulfillmentRate:
		return "fulfillment_rate"
	}
	return "unknown"
}

// Value devuelve el valor almacenado de la métrica m.
func Value(metrics entity.Metrics, m Metric) float64 {
	switch m {
	case OnTimeDeliveryRate:
		return metrics.OnTimeDeliveryRate
	case QualityRatingAvg:
		return metrics.QualityRatingAvg
	case AverageResponseTime:
		return metrics.AverageResponseTime
	case FulfillmentRate:
		return metrics.FulfillmentRate
	}
	return 0
}

// WithValue devuelve una copia de metrics con la métrica m reemplazada por v.
func WithValue(metrics entity.Metrics, m Metric, v float64) entity.Metrics {
	switch m {
	case OnTimeDeliveryRate:
		metrics.OnTimeDeliveryRate = v
	case QualityRatingAvg:
		metrics.QualityRatingAvg = v
	case AverageResponseTime:
		metrics.AverageResponseTime = v
	case FulfillmentRate:
		metrics.FulfillmentRate = v
	}
	return metrics
}

// MetricSet conjunto de métricas a recalcular.
type MetricSet uint8

// SetOf construye un MetricSet con las métricas indicadas.
func SetOf(metrics ...Metric) MetricSet {
	var s MetricSet
	for _, m := range metrics {
		s = s.With(m)
	}
	return s
}

// FullSet contiene las cuatro métricas.
func FullSet() MetricSet { return SetOf(AllMetrics...) }

// With agrega m al conjunto.
func (s MetricSet) With(m Metric) MetricSet { return s | 1<<uint(m) }

// Has indica si m pertenece al conjunto.
func (s MetricSet) Has(m Metric) bool { return s&(1<<uint(m)) != 0 }

// IsEmpty indica si el conjunto no tiene métricas.
func (s MetricSet) IsEmpty() bool { return s == 0 }

// Metrics devuelve las métricas del conjunto en el orden de despacho.
func (s MetricSet) Metrics() []Metric {
	out := make([]Metric, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}
