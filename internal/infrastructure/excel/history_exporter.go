// Package excel exporta el historial de desempeño a XLSX con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
)

const (
	historySheet = "Historial"
	vendorSheet  = "Proveedor"
)

var historyHeaders = []any{
	"Fecha (UTC)",
	"Entregas a tiempo %",
	"Calidad promedio",
	"Tiempo de respuesta h",
	"Cumplimiento %",
}

// HistoryExporter implementa usecase.HistoryExporter.
type HistoryExporter struct{}

// NewHistoryExporter construye el exportador.
func NewHistoryExporter() *HistoryExporter { return &HistoryExporter{} }

// ExportHistory arma un libro con una hoja de historial (una fila por foto) y una hoja con los
// datos del proveedor.
func (e *HistoryExporter) ExportHistory(
	_ context.Context,
	vendor *entity.Vendor,
	history []*entity.HistoricalPerformance,
) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeaders); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	dateFmt := "yyyy-mm-dd hh:mm:ss"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo fecha: %w", err)
	}
	if err := f.SetCellStyle(historySheet, "A1", "E1", bold); err != nil {
		return nil, err
	}

	for i, h := range history {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			h.Date.UTC(),
			round2(h.Metrics.OnTimeDeliveryRate),
			round2(h.Metrics.QualityRatingAvg),
			round2(h.Metrics.AverageResponseTime),
			round2(h.Metrics.FulfillmentRate),
		}
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
		if err := f.SetCellStyle(historySheet, cell, cell, dateStyle); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(historySheet, "A", "E", 22); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(vendorSheet); err != nil {
		return nil, fmt.Errorf("excel: hoja proveedor: %w", err)
	}
	for i, kv := range [][]any{
		{"Código", vendor.VendorCode},
		{"Nombre", vendor.Name},
		{"Contacto", vendor.ContactDetails},
		{"Dirección", vendor.Address},
		{"Fotos exportadas", len(history)},
	} {
		if err := f.SetSheetRow(vendorSheet, fmt.Sprintf("A%d", i+1), &kv); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(vendorSheet, "A1", "A5", bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
