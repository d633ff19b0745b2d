package entity

import "time"

// Vendor representa un proveedor. VendorCode es la identidad: única, inmutable tras la creación.
// Las cuatro métricas reflejan el último recálculo confirmado (inician en 0).
type Vendor struct {
	VendorCode     string
	Name           string
	ContactDetails string
	Address        string
	Metrics        Metrics
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Metrics agrupa las cuatro métricas de desempeño de un proveedor.
type Metrics struct {
	OnTimeDeliveryRate  float64 // porcentaje 0-100
	QualityRatingAvg    float64
	AverageResponseTime float64 // horas
	FulfillmentRate     float64 // porcentaje 0-100
}
