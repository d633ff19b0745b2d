package dto

import (
	"encoding/json"
	"time"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra. Status vacío = pending.
type CreatePurchaseOrderRequest struct {
	PONumber             string          `json:"po_number" validate:"required,min=1,max=50"`
	VendorCode           string          `json:"vendor_code" validate:"required,min=1,max=50"`
	Items                json.RawMessage `json:"items" swaggertype:"object"`
	Quantity             int             `json:"quantity" validate:"required,gt=0"`
	Status               string          `json:"status" validate:"omitempty,oneof=pending incomplete complete"`
	QualityRating        *float64        `json:"quality_rating" validate:"omitempty,gte=0,lte=10"`
	OrderDate            time.Time       `json:"order_date" validate:"required"`
	IssueDate            time.Time       `json:"issue_date" validate:"required"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date" validate:"required"`
	FinalDeliveryDate    *time.Time      `json:"final_delivery_date"`
	AcknowledgmentDate   *time.Time      `json:"acknowledgment_date"`
}

// UpdatePurchaseOrderRequest reemplazo completo de los campos mutables.
// PONumber y VendorCode son opcionales y, si vienen, deben coincidir con los almacenados.
type UpdatePurchaseOrderRequest struct {
	PONumber             string          `json:"po_number,omitempty"`
	VendorCode           string          `json:"vendor_code,omitempty"`
	Items                json.RawMessage `json:"items" swaggertype:"object"`
	Quantity             int             `json:"quantity" validate:"required,gt=0"`
	Status               string          `json:"status" validate:"required,oneof=pending incomplete complete"`
	QualityRating        *float64        `json:"quality_rating" validate:"omitempty,gte=0,lte=10"`
	OrderDate            time.Time       `json:"order_date" validate:"required"`
	IssueDate            time.Time       `json:"issue_date" validate:"required"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date" validate:"required"`
	FinalDeliveryDate    *time.Time      `json:"final_delivery_date"`
	AcknowledgmentDate   *time.Time      `json:"acknowledgment_date"`
}

// CompletePurchaseOrderRequest cierre de una orden. FinalDeliveryDate vacío = ahora.
type CompletePurchaseOrderRequest struct {
	FinalDeliveryDate *time.Time `json:"final_delivery_date"`
	QualityRating     *float64   `json:"quality_rating" validate:"omitempty,gte=0,lte=10"`
}

// PurchaseOrderFilter filtros de listado (query string).
type PurchaseOrderFilter struct {
	VendorCode string `query:"vendor_code"`
	Status     string `query:"status" validate:"omitempty,oneof=pending incomplete complete"`
	PageRequest
}

// PurchaseOrderResponse salida de una orden.
type PurchaseOrderResponse struct {
	PONumber             string          `json:"po_number"`
	VendorCode           string          `json:"vendor_code"`
	Items                json.RawMessage `json:"items" swaggertype:"object"`
	Quantity             int             `json:"quantity"`
	Status               string          `json:"status"`
	QualityRating        *float64        `json:"quality_rating"`
	OrderDate            time.Time       `json:"order_date"`
	IssueDate            time.Time       `json:"issue_date"`
	ExpectedDeliveryDate time.Time       `json:"expected_delivery_date"`
	FinalDeliveryDate    *time.Time      `json:"final_delivery_date"`
	AcknowledgmentDate   *time.Time      `json:"acknowledgment_date"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// PurchaseOrderListResponse listado paginado.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
