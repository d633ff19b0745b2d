package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// PurchaseOrderUseCase CRUD de órdenes de compra. Cada escritura confirmada se notifica al
// Trigger, que recalcula las métricas afectadas del proveedor.
type PurchaseOrderUseCase struct {
	repo       repository.PurchaseOrderRepository
	vendorRepo repository.VendorRepository
	notifier   OrderChangeNotifier
	log        zerolog.Logger
	now        func() time.Time
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	notifier OrderChangeNotifier,
	log zerolog.Logger,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		repo:       repo,
		vendorRepo: vendorRepo,
		notifier:   notifier,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create registra una orden para un proveedor existente.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	vendor, err := uc.vendorRepo.GetByCode(ctx, in.VendorCode)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, fmt.Errorf("%w: el proveedor %s no existe", domain.ErrInvalidInput, in.VendorCode)
	}

	now := uc.now()
	status := in.Status
	if status == "" {
		status = entity.POStatusPending
	}
	po := &entity.PurchaseOrder{
		PONumber:             strings.TrimSpace(in.PONumber),
		VendorCode:           in.VendorCode,
		Items:                in.Items,
		Quantity:             in.Quantity,
		Status:               status,
		QualityRating:        in.QualityRating,
		OrderDate:            in.OrderDate,
		IssueDate:            in.IssueDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		FinalDeliveryDate:    in.FinalDeliveryDate,
		AcknowledgmentDate:   in.AcknowledgmentDate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := validateOrder(po); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, po); err != nil {
		return nil, err
	}
	if err := uc.notify(ctx, performance.OrderChange{Kind: performance.OrderCreated, VendorCode: po.VendorCode, After: po}); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// Get obtiene una orden por número.
func (uc *PurchaseOrderUseCase) Get(ctx context.Context, poNumber string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.load(ctx, poNumber)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// List lista órdenes filtrando opcionalmente por proveedor y estado.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, f dto.PurchaseOrderFilter) (*dto.PurchaseOrderListResponse, error) {
	f.DefaultPage()
	list, err := uc.repo.List(ctx, repository.PurchaseOrderFilter{VendorCode: f.VendorCode, Status: f.Status}, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toPurchaseOrderResponse(po))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update reemplaza los campos mutables. po_number y vendor_code no pueden cambiar.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, poNumber string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.PONumber != "" && in.PONumber != poNumber {
		return nil, fmt.Errorf("%w: po_number", domain.ErrImmutableField)
	}
	before, err := uc.load(ctx, poNumber)
	if err != nil {
		return nil, err
	}
	if in.VendorCode != "" && in.VendorCode != before.VendorCode {
		return nil, fmt.Errorf("%w: vendor_code", domain.ErrImmutableField)
	}

	after := *before
	after.Items = in.Items
	after.Quantity = in.Quantity
	after.Status = in.Status
	after.QualityRating = in.QualityRating
	after.OrderDate = in.OrderDate
	after.IssueDate = in.IssueDate
	after.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	after.FinalDeliveryDate = in.FinalDeliveryDate
	after.AcknowledgmentDate = in.AcknowledgmentDate
	return uc.save(ctx, before, &after)
}

// Acknowledge registra el acuse del proveedor con la hora actual.
func (uc *PurchaseOrderUseCase) Acknowledge(ctx context.Context, poNumber string) error {
	before, err := uc.load(ctx, poNumber)
	if err != nil {
		return err
	}
	after := *before
	now := uc.now()
	after.AcknowledgmentDate = &now
	_, err = uc.save(ctx, before, &after)
	return err
}

// Complete cierra la orden: status complete, fecha final (ahora si no viene) y calificación opcional.
func (uc *PurchaseOrderUseCase) Complete(ctx context.Context, poNumber string, in dto.CompletePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	before, err := uc.load(ctx, poNumber)
	if err != nil {
		return nil, err
	}
	after := *before
	after.Status = entity.POStatusComplete
	final := uc.now()
	if in.FinalDeliveryDate != nil {
		final = *in.FinalDeliveryDate
	}
	after.FinalDeliveryDate = &final
	if in.QualityRating != nil {
		after.QualityRating = in.QualityRating
	}
	return uc.save(ctx, before, &after)
}

// Delete elimina la orden y recalcula las cuatro métricas del proveedor.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, poNumber string) error {
	before, err := uc.load(ctx, poNumber)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, poNumber); err != nil {
		return err
	}
	return uc.notify(ctx, performance.OrderChange{Kind: performance.OrderDeleted, VendorCode: before.VendorCode, Before: before})
}

func (uc *PurchaseOrderUseCase) save(ctx context.Context, before, after *entity.PurchaseOrder) (*dto.PurchaseOrderResponse, error) {
	if err := validateOrder(after); err != nil {
		return nil, err
	}
	after.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, after); err != nil {
		return nil, err
	}
	ch := performance.OrderChange{Kind: performance.OrderUpdated, VendorCode: after.VendorCode, Before: before, After: after}
	if err := uc.notify(ctx, ch); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(after), nil
}

// notify corre después de confirmar la escritura; si falla, la orden queda guardada y
// POST /api/vendors/:code/recompute repara las métricas.
func (uc *PurchaseOrderUseCase) notify(ctx context.Context, ch performance.OrderChange) error {
	if _, err := uc.notifier.OnOrderChange(ctx, ch); err != nil {
		uc.log.Error().Err(err).
			Str("vendor_code", ch.VendorCode).
			Str("change", ch.Kind.String()).
			Msg("orden guardada pero el recálculo de métricas falló")
		return fmt.Errorf("recalcular métricas de %s: %w", ch.VendorCode, err)
	}
	return nil
}

func (uc *PurchaseOrderUseCase) load(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error) {
	po, err := uc.repo.GetByNumber(ctx, poNumber)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

// validateOrder invariantes de la orden antes de persistir.
func validateOrder(po *entity.PurchaseOrder) error {
	if po.PONumber == "" {
		return fmt.Errorf("%w: po_number vacío", domain.ErrInvalidInput)
	}
	if po.Quantity <= 0 {
		return fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if !entity.ValidStatus(po.Status) {
		return fmt.Errorf("%w: status %q no válido", domain.ErrInvalidInput, po.Status)
	}
	if r := po.QualityRating; r != nil && (math.IsNaN(*r) || *r < 0 || *r > 10) {
		return fmt.Errorf("%w: quality_rating debe estar entre 0 y 10", domain.ErrInvalidInput)
	}
	if po.AcknowledgmentDate != nil && po.AcknowledgmentDate.Before(po.IssueDate) {
		return fmt.Errorf("%w: acknowledgment_date anterior a issue_date", domain.ErrInvalidInput)
	}
	if po.FinalDeliveryDate != nil && !po.IsComplete() {
		return fmt.Errorf("%w: final_delivery_date requiere status complete", domain.ErrInvalidInput)
	}
	return nil
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		PONumber:             po.PONumber,
		VendorCode:           po.VendorCode,
		Items:                po.Items,
		Quantity:             po.Quantity,
		Status:               po.Status,
		QualityRating:        po.QualityRating,
		OrderDate:            po.OrderDate,
		IssueDate:            po.IssueDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		FinalDeliveryDate:    po.FinalDeliveryDate,
		AcknowledgmentDate:   po.AcknowledgmentDate,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}
