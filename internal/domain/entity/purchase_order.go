package entity

import (
	"encoding/json"
	"time"
)

// Estados válidos de una orden de compra.
const (
	POStatusPending    = "pending"
	POStatusIncomplete = "incomplete"
	POStatusComplete   = "complete"
)

// PurchaseOrder representa una orden de compra emitida a un proveedor.
// PONumber y VendorCode se fijan en la creación y no cambian.
type PurchaseOrder struct {
	PONumber             string
	VendorCode           string
	Items                json.RawMessage // payload libre
	Quantity             int
	Status               string
	QualityRating        *float64 // nil = sin calificar
	OrderDate            time.Time
	IssueDate            time.Time
	ExpectedDeliveryDate time.Time
	FinalDeliveryDate    *time.Time
	AcknowledgmentDate   *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsComplete indica si la orden está en estado complete.
func (po *PurchaseOrder) IsComplete() bool {
	return po.Status == POStatusComplete
}

// ValidStatus indica si s es uno de los estados admitidos.
func ValidStatus(s string) bool {
	switch s {
	case POStatusPending, POStatusIncomplete, POStatusComplete:
		return true
	}
	return false
}
