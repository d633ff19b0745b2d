package dto

import "time"

// CreateVendorRequest entrada para crear un proveedor. Las métricas inician en 0.
type CreateVendorRequest struct {
	VendorCode     string `json:"vendor_code" validate:"required,min=1,max=50"`
	Name           string `json:"name" validate:"required,min=1,max=255"`
	ContactDetails string `json:"contact_details" validate:"max=2000"`
	Address        string `json:"address" validate:"max=2000"`
}

// UpdateVendorRequest entrada para actualizar. VendorCode es opcional y, si viene, debe coincidir con la ruta.
type UpdateVendorRequest struct {
	VendorCode     string `json:"vendor_code,omitempty"`
	Name           string `json:"name" validate:"required,min=1,max=255"`
	ContactDetails string `json:"contact_details" validate:"max=2000"`
	Address        string `json:"address" validate:"max=2000"`
}

// VendorResponse salida de un proveedor con sus métricas almacenadas.
type VendorResponse struct {
	VendorCode          string    `json:"vendor_code"`
	Name                string    `json:"name"`
	ContactDetails      string    `json:"contact_details"`
	Address             string    `json:"address"`
	OnTimeDeliveryRate  float64   `json:"on_time_delivery_rate"`
	QualityRatingAvg    float64   `json:"quality_rating_avg"`
	AverageResponseTime float64   `json:"average_response_time"`
	FulfillmentRate     float64   `json:"fulfillment_rate"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// VendorListResponse listado paginado.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
