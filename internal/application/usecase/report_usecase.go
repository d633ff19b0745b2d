package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

const (
	// scorecardHistoryLimit fotos del historial incluidas en el reporte.
	scorecardHistoryLimit = 30
	// exportHistoryLimit tope de filas de la exportación XLSX.
	exportHistoryLimit = 10000
)

// ReportUseCase genera el scorecard PDF y la exportación XLSX del historial de un proveedor.
type ReportUseCase struct {
	vendorRepo  repository.VendorRepository
	orderRepo   repository.PurchaseOrderRepository
	historyRepo repository.HistoricalPerformanceRepository
	generator   ScorecardGenerator
	exporter    HistoryExporter
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	vendorRepo repository.VendorRepository,
	orderRepo repository.PurchaseOrderRepository,
	historyRepo repository.HistoricalPerformanceRepository,
	generator ScorecardGenerator,
	exporter HistoryExporter,
) *ReportUseCase {
	return &ReportUseCase{
		vendorRepo:  vendorRepo,
		orderRepo:   orderRepo,
		historyRepo: historyRepo,
		generator:   generator,
		exporter:    exporter,
	}
}

// VendorScorecard arma los datos del reporte y devuelve el PDF y su nombre de archivo.
func (uc *ReportUseCase) VendorScorecard(ctx context.Context, vendorCode string) (pdfBytes []byte, filename string, err error) {
	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: obtener proveedor: %w", err)
	}
	if vendor == nil {
		return nil, "", domain.ErrNotFound
	}

	orders, err := uc.orderRepo.ListByVendor(ctx, vendorCode)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: obtener órdenes: %w", err)
	}
	byStatus := make(map[string]int, 3)
	for _, po := range orders {
		byStatus[po.Status]++
	}

	history, err := uc.historyRepo.ListByVendor(ctx, vendorCode, nil, nil, scorecardHistoryLimit, 0)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: obtener historial: %w", err)
	}

	now := time.Now().UTC()
	card := &Scorecard{
		Vendor:         vendor,
		Performance:    toPerformanceResponse(vendorCode, vendor.Metrics),
		History:        history,
		OrdersByStatus: byStatus,
		TotalOrders:    len(orders),
		GeneratedAt:    now,
	}
	pdfBytes, err = uc.generator.GenerateScorecard(ctx, card)
	if err != nil {
		return nil, "", fmt.Errorf("scorecard: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("scorecard_%s_%s.pdf", vendorCode, now.Format("20060102")), nil
}

// HistoryWorkbook exporta el historial del proveedor en [from, to] (opcionales) a XLSX.
func (uc *ReportUseCase) HistoryWorkbook(ctx context.Context, vendorCode string, from, to *time.Time) (xlsx []byte, filename string, err error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, "", fmt.Errorf("%w: to anterior a from", domain.ErrInvalidInput)
	}
	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		return nil, "", fmt.Errorf("exportar historial: obtener proveedor: %w", err)
	}
	if vendor == nil {
		return nil, "", domain.ErrNotFound
	}
	history, err := uc.historyRepo.ListByVendor(ctx, vendorCode, from, to, exportHistoryLimit, 0)
	if err != nil {
		return nil, "", fmt.Errorf("exportar historial: %w", err)
	}
	xlsx, err = uc.exporter.ExportHistory(ctx, vendor, history)
	if err != nil {
		return nil, "", fmt.Errorf("exportar historial: generación fallida: %w", err)
	}
	return xlsx, fmt.Sprintf("historial_%s_%s.xlsx", vendorCode, time.Now().UTC().Format("20060102")), nil
}
