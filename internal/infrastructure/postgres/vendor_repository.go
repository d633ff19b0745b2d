package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `vendor_code, name, contact_details, address,
	on_time_delivery_rate, quality_rating_avg, average_response_time, fulfillment_rate,
	created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	db Querier
}

// NewVendorRepository construye el adaptador; db puede ser el pool o una tx.
func NewVendorRepository(db Querier) *VendorRepo {
	return &VendorRepo{db: db}
}

// Create persiste un proveedor nuevo con las métricas en 0.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		v.VendorCode, v.Name, v.ContactDetails, v.Address,
		v.Metrics.OnTimeDeliveryRate, v.Metrics.QualityRatingAvg, v.Metrics.AverageResponseTime, v.Metrics.FulfillmentRate,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByCode obtiene un proveedor por código.
func (r *VendorRepo) GetByCode(ctx context.Context, code string) (*entity.Vendor, error) {
	return r.get(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_code = $1`, code)
}

// GetForUpdate obtiene el proveedor bloqueando su fila hasta el fin de la tx.
func (r *VendorRepo) GetForUpdate(ctx context.Context, code string) (*entity.Vendor, error) {
	return r.get(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE vendor_code = $1 FOR UPDATE`, code)
}

func (r *VendorRepo) get(ctx context.Context, query, code string) (*entity.Vendor, error) {
	v, err := scanVendor(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// Update actualiza los datos descriptivos; las métricas solo las escribe UpdateMetrics.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact_details = $3, address = $4, updated_at = $5
		WHERE vendor_code = $1`
	cmd, err := r.db.Exec(ctx, query, v.VendorCode, v.Name, v.ContactDetails, v.Address, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateMetrics escribe las cuatro métricas del proveedor.
func (r *VendorRepo) UpdateMetrics(ctx context.Context, code string, m entity.Metrics, at time.Time) error {
	query := `
		UPDATE vendors SET on_time_delivery_rate = $2, quality_rating_avg = $3,
			average_response_time = $4, fulfillment_rate = $5, updated_at = $6
		WHERE vendor_code = $1`
	cmd, err := r.db.Exec(ctx, query, code,
		m.OnTimeDeliveryRate, m.QualityRatingAvg, m.AverageResponseTime, m.FulfillmentRate, at,
	)
	if err != nil {
		return fmt.Errorf("update vendor metrics: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista proveedores ordenados por código con paginación.
func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY vendor_code LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Delete elimina el proveedor; sus órdenes e historial caen por ON DELETE CASCADE.
func (r *VendorRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE vendor_code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(
		&v.VendorCode, &v.Name, &v.ContactDetails, &v.Address,
		&v.Metrics.OnTimeDeliveryRate, &v.Metrics.QualityRatingAvg, &v.Metrics.AverageResponseTime, &v.Metrics.FulfillmentRate,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
