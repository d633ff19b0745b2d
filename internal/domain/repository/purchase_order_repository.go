package repository

import (
	"context"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
)

// PurchaseOrderFilter filtros opcionales para listar órdenes (vacío = sin filtro).
type PurchaseOrderFilter struct {
	VendorCode string
	Status     string
}

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByNumber(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	Delete(ctx context.Context, poNumber string) error
	List(ctx context.Context, filter PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error)
	// ListByVendor devuelve todas las órdenes del proveedor, sin paginar. Lo usa el motor de métricas.
	ListByVendor(ctx context.Context, vendorCode string) ([]*entity.PurchaseOrder, error)
}
