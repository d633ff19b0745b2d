package performance

import (
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
)

// ChangeKind tipo de mutación sobre una orden de compra.
type ChangeKind int

const (
	OrderCreated ChangeKind = iota
	OrderUpdated
	OrderDeleted
)

func (k ChangeKind) String() string {
	switch k {
	case OrderCreated:
		return "created"
	case OrderUpdated:
		return "updated"
	case OrderDeleted:
		return "deleted"
	}
	return "unknown"
}

// OrderChange describe una escritura confirmada sobre una orden.
// Before es nil en la creación; After es nil en el borrado.
type OrderChange struct {
	Kind       ChangeKind
	VendorCode string
	Before     *entity.PurchaseOrder
	After      *entity.PurchaseOrder
}

// AffectedMetrics decide qué métricas hay que recalcular tras el cambio.
// fulfillment_rate siempre se incluye (y se despacha al final); un borrado afecta a las cuatro.
func AffectedMetrics(ch OrderChange) rules.MetricSet {
	if ch.Kind == OrderDeleted || ch.After == nil {
		return rules.FullSet()
	}
	before, after := ch.Before, ch.After
	var set rules.MetricSet

	becameComplete := after.IsComplete() && (before == nil || !before.IsComplete())
	if becameComplete {
		set = set.With(rules.OnTimeDeliveryRate).With(rules.QualityRatingAvg)
	}

	if before != nil && (before.IsComplete() || after.IsComplete()) {
		if before.Status != after.Status ||
			!sameTimePtr(before.FinalDeliveryDate, after.FinalDeliveryDate) ||
			!before.ExpectedDeliveryDate.Equal(after.ExpectedDeliveryDate) {
			set = set.With(rules.OnTimeDeliveryRate)
		}
	}

	if before == nil {
		if after.QualityRating != nil {
			set = set.With(rules.QualityRatingAvg)
		}
	} else if !sameFloatPtr(before.QualityRating, after.QualityRating) {
		set = set.With(rules.QualityRatingAvg)
	}

	if after.AcknowledgmentDate != nil {
		set = set.With(rules.AverageResponseTime)
	}
	if before != nil && (!sameTimePtr(before.AcknowledgmentDate, after.AcknowledgmentDate) ||
		(before.AcknowledgmentDate != nil && !before.IssueDate.Equal(after.IssueDate))) {
		set = set.With(rules.AverageResponseTime)
	}

	return set.With(rules.FulfillmentRate)
}

func sameTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func sameFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
