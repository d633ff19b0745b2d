package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// VendorUseCase CRUD de proveedores y consulta/recálculo de sus métricas.
type VendorUseCase struct {
	repo       repository.VendorRepository
	recomputer Recomputer
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository, recomputer Recomputer) *VendorUseCase {
	return &VendorUseCase{repo: repo, recomputer: recomputer}
}

// Create crea un proveedor con las cuatro métricas en 0.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	code := strings.TrimSpace(in.VendorCode)
	if code == "" {
		return nil, fmt.Errorf("%w: vendor_code vacío", domain.ErrInvalidInput)
	}
	name := cleanText(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name vacío", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	vendor := &entity.Vendor{
		VendorCode:     code,
		Name:           name,
		ContactDetails: cleanText(in.ContactDetails),
		Address:        cleanText(in.Address),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Get obtiene un proveedor por código.
func (uc *VendorUseCase) Get(ctx context.Context, code string) (*dto.VendorResponse, error) {
	vendor, err := uc.load(ctx, code)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// Update actualiza los datos descriptivos. El código no puede cambiar.
func (uc *VendorUseCase) Update(ctx context.Context, code string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	if in.VendorCode != "" && in.VendorCode != code {
		return nil, fmt.Errorf("%w: vendor_code", domain.ErrImmutableField)
	}
	name := cleanText(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name vacío", domain.ErrInvalidInput)
	}
	vendor, err := uc.load(ctx, code)
	if err != nil {
		return nil, err
	}
	vendor.Name = name
	vendor.ContactDetails = cleanText(in.ContactDetails)
	vendor.Address = cleanText(in.Address)
	vendor.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores con paginación.
func (uc *VendorUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina el proveedor junto con sus órdenes e historial.
func (uc *VendorUseCase) Delete(ctx context.Context, code string) error {
	return uc.repo.Delete(ctx, code)
}

// Performance devuelve las métricas almacenadas redondeadas a 2 decimales.
func (uc *VendorUseCase) Performance(ctx context.Context, code string) (*dto.PerformanceResponse, error) {
	vendor, err := uc.load(ctx, code)
	if err != nil {
		return nil, err
	}
	out := toPerformanceResponse(code, vendor.Metrics)
	return &out, nil
}

// Recompute recalcula las cuatro métricas desde las órdenes. Repara estados que hayan quedado
// desalineados si un recálculo disparado por una orden falló.
func (uc *VendorUseCase) Recompute(ctx context.Context, code string) (*dto.RecomputeResponse, error) {
	out, err := uc.recomputer.Recompute(ctx, code, rules.FullSet())
	if err != nil {
		return nil, err
	}
	return toRecomputeResponse(out), nil
}

func (uc *VendorUseCase) load(ctx context.Context, code string) (*entity.Vendor, error) {
	vendor, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}
	return vendor, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		VendorCode:          v.VendorCode,
		Name:                v.Name,
		ContactDetails:      v.ContactDetails,
		Address:             v.Address,
		OnTimeDeliveryRate:  v.Metrics.OnTimeDeliveryRate,
		QualityRatingAvg:    v.Metrics.QualityRatingAvg,
		AverageResponseTime: v.Metrics.AverageResponseTime,
		FulfillmentRate:     v.Metrics.FulfillmentRate,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func toPerformanceResponse(code string, m entity.Metrics) dto.PerformanceResponse {
	return dto.PerformanceResponse{
		VendorCode:          code,
		OnTimeDeliveryRate:  round2(m.OnTimeDeliveryRate),
		QualityRatingAvg:    round2(m.QualityRatingAvg),
		AverageResponseTime: round2(m.AverageResponseTime),
		FulfillmentRate:     round2(m.FulfillmentRate),
	}
}

func toRecomputeResponse(out *performance.Outcome) *dto.RecomputeResponse {
	changed := make([]string, 0, len(out.Changed))
	for _, m := range out.Changed {
		changed = append(changed, m.String())
	}
	resp := &dto.RecomputeResponse{
		Performance: toPerformanceResponse(out.VendorCode, out.Metrics),
		Changed:     changed,
	}
	if out.Snapshot != nil {
		resp.SnapshotID = out.Snapshot.ID
	}
	return resp
}

// round2 redondeo half-up a 2 decimales (solo presentación; lo almacenado conserva la precisión).
func round2(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
