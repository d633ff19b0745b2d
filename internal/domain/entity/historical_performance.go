package entity

import "time"

// HistoricalPerformance es una foto inmutable de las cuatro métricas de un proveedor en un instante.
// Solo la crea el motor de métricas; nunca se actualiza.
type HistoricalPerformance struct {
	ID         string
	VendorCode string
	Date       time.Time
	Metrics    Metrics
}
