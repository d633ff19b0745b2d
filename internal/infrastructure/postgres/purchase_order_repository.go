package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `po_number, vendor_code, items, quantity, status, quality_rating,
	order_date, issue_date, expected_delivery_date, final_delivery_date, acknowledgment_date,
	created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	db Querier
}

// NewPurchaseOrderRepository construye el adaptador; db puede ser el pool o una tx.
func NewPurchaseOrderRepository(db Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{db: db}
}

// Create persiste una orden. Devuelve ErrDuplicate si el número ya existe y ErrNotFound si el proveedor no existe.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		po.PONumber, po.VendorCode, itemsOrEmpty(po.Items), po.Quantity, po.Status, ratingParam(po.QualityRating),
		po.OrderDate, po.IssueDate, po.ExpectedDeliveryDate, po.FinalDeliveryDate, po.AcknowledgmentDate,
		po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByNumber obtiene una orden por número.
func (r *PurchaseOrderRepo) GetByNumber(ctx context.Context, poNumber string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE po_number = $1`
	po, err := scanPurchaseOrder(r.db.QueryRow(ctx, query, poNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// Update reescribe los campos mutables de la orden (po_number y vendor_code no cambian).
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET items = $2, quantity = $3, status = $4, quality_rating = $5,
			order_date = $6, issue_date = $7, expected_delivery_date = $8,
			final_delivery_date = $9, acknowledgment_date = $10, updated_at = $11
		WHERE po_number = $1`
	cmd, err := r.db.Exec(ctx, query,
		po.PONumber, itemsOrEmpty(po.Items), po.Quantity, po.Status, ratingParam(po.QualityRating),
		po.OrderDate, po.IssueDate, po.ExpectedDeliveryDate,
		po.FinalDeliveryDate, po.AcknowledgmentDate, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una orden por número.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, poNumber string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM purchase_orders WHERE po_number = $1`, poNumber)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes aplicando los filtros no vacíos, más recientes primero.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var (
		where []string
		args  []any
	)
	if f.VendorCode != "" {
		args = append(args, f.VendorCode)
		where = append(where, fmt.Sprintf("vendor_code = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY order_date DESC, po_number LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	return r.query(ctx, query, args...)
}

// ListByVendor devuelve todas las órdenes del proveedor (entrada del motor de métricas).
func (r *PurchaseOrderRepo) ListByVendor(ctx context.Context, vendorCode string) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE vendor_code = $1 ORDER BY po_number`
	return r.query(ctx, query, vendorCode)
}

func (r *PurchaseOrderRepo) query(ctx context.Context, query string, args ...any) ([]*entity.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	var items []byte
	var rating decimal.NullDecimal
	err := row.Scan(
		&po.PONumber, &po.VendorCode, &items, &po.Quantity, &po.Status, &rating,
		&po.OrderDate, &po.IssueDate, &po.ExpectedDeliveryDate, &po.FinalDeliveryDate, &po.AcknowledgmentDate,
		&po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	po.Items = items
	if rating.Valid {
		f := rating.Decimal.InexactFloat64()
		po.QualityRating = &f
	}
	return &po, nil
}

// ratingParam convierte la calificación a NUMERIC(4,2); nil se guarda como NULL.
func ratingParam(r *float64) any {
	if r == nil {
		return nil
	}
	return decimal.NewFromFloat(*r).Round(2)
}

// itemsOrEmpty evita insertar NULL en la columna JSONB NOT NULL.
func itemsOrEmpty(items []byte) []byte {
	if len(items) == 0 {
		return []byte("[]")
	}
	return items
}
