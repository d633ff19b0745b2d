package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// HistoryUseCase lectura del historial de desempeño y borrado administrativo.
type HistoryUseCase struct {
	repo       repository.HistoricalPerformanceRepository
	vendorRepo repository.VendorRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.HistoricalPerformanceRepository, vendorRepo repository.VendorRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo, vendorRepo: vendorRepo}
}

// List devuelve las fotos del proveedor, más recientes primero.
func (uc *HistoryUseCase) List(ctx context.Context, vendorCode string, f dto.HistoryFilter) (*dto.HistoryListResponse, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return nil, fmt.Errorf("%w: to anterior a from", domain.ErrInvalidInput)
	}
	if err := uc.ensureVendor(ctx, vendorCode); err != nil {
		return nil, err
	}
	f.DefaultPage()
	list, err := uc.repo.ListByVendor(ctx, vendorCode, f.From, f.To, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoricalPerformanceResponse, 0, len(list))
	for _, h := range list {
		items = append(items, toHistoryResponse(h))
	}
	return &dto.HistoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// DeleteAll borra todo el historial del proveedor. Las métricas almacenadas no cambian.
func (uc *HistoryUseCase) DeleteAll(ctx context.Context, vendorCode string) (*dto.DeleteHistoryResponse, error) {
	if err := uc.ensureVendor(ctx, vendorCode); err != nil {
		return nil, err
	}
	n, err := uc.repo.DeleteByVendor(ctx, vendorCode)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteHistoryResponse{Deleted: n}, nil
}

func (uc *HistoryUseCase) ensureVendor(ctx context.Context, vendorCode string) error {
	vendor, err := uc.vendorRepo.GetByCode(ctx, vendorCode)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toHistoryResponse(h *entity.HistoricalPerformance) dto.HistoricalPerformanceResponse {
	return dto.HistoricalPerformanceResponse{
		ID:                  h.ID,
		VendorCode:          h.VendorCode,
		Date:                h.Date,
		OnTimeDeliveryRate:  round2(h.Metrics.OnTimeDeliveryRate),
		QualityRatingAvg:    round2(h.Metrics.QualityRatingAvg),
		AverageResponseTime: round2(h.Metrics.AverageResponseTime),
		FulfillmentRate:     round2(h.Metrics.FulfillmentRate),
	}
}
