package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor (DIP).
// GetByCode y GetForUpdate devuelven (nil, nil) si el proveedor no existe.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByCode(ctx context.Context, code string) (*entity.Vendor, error)
	// GetForUpdate bloquea la fila del proveedor hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, code string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	UpdateMetrics(ctx context.Context, code string, metrics entity.Metrics, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
	Delete(ctx context.Context, code string) error
}
