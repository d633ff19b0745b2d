package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

var _ performance.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPerformance inicia una transacción, ejecuta fn con repos de proveedor, órdenes e historial
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunPerformance(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	orderRepo repository.PurchaseOrderRepository,
	historyRepo repository.HistoricalPerformanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewVendorRepository(tx), NewPurchaseOrderRepository(tx), NewHistoricalPerformanceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
