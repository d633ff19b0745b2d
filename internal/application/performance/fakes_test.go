package performance_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// memStore almacenamiento en memoria; RunPerformance serializa como una tx.
type memStore struct {
	mu        sync.Mutex
	vendors   map[string]*entity.Vendor
	orders    map[string]*entity.PurchaseOrder
	history   []*entity.HistoricalPerformance
	failWrite error
}

func newMemStore() *memStore {
	return &memStore{
		vendors: map[string]*entity.Vendor{},
		orders:  map[string]*entity.PurchaseOrder{},
	}
}

func (s *memStore) addVendor(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors[code] = &entity.Vendor{VendorCode: code, Name: code}
}

func (s *memStore) putOrder(po *entity.PurchaseOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *po
	s.orders[po.PONumber] = &cp
}

func (s *memStore) deleteOrder(poNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, poNumber)
}

func (s *memStore) vendor(code string) entity.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.vendors[code]
}

func (s *memStore) historyFor(code string) []*entity.HistoricalPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.HistoricalPerformance
	for _, h := range s.history {
		if h.VendorCode == code {
			out = append(out, h)
		}
	}
	return out
}

func (s *memStore) RunPerformance(ctx context.Context, fn func(
	vendorRepo repository.VendorRepository,
	orderRepo repository.PurchaseOrderRepository,
	historyRepo repository.HistoricalPerformanceRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, vendors: map[string]entity.Metrics{}}
	if err := fn(&vendorTx{tx: tx}, &orderTx{tx: tx}, &historyTx{tx: tx}); err != nil {
		return err
	}
	// commit
	for code, m := range tx.vendors {
		s.vendors[code].Metrics = m
	}
	s.history = append(s.history, tx.history...)
	return nil
}

// memTx acumula escrituras y solo las aplica si fn no falla (rollback implícito).
type memTx struct {
	store   *memStore
	vendors map[string]entity.Metrics
	history []*entity.HistoricalPerformance
}

// Los adaptadores embeben el puerto para cubrir métodos que el motor no usa.
type vendorTx struct {
	repository.VendorRepository
	tx *memTx
}

func (r *vendorTx) GetByCode(ctx context.Context, code string) (*entity.Vendor, error) {
	v, ok := r.tx.store.vendors[code]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *vendorTx) GetForUpdate(ctx context.Context, code string) (*entity.Vendor, error) {
	return r.GetByCode(ctx, code)
}

func (r *vendorTx) UpdateMetrics(ctx context.Context, code string, metrics entity.Metrics, at time.Time) error {
	if r.tx.store.failWrite != nil {
		return r.tx.store.failWrite
	}
	r.tx.vendors[code] = metrics
	return nil
}

type orderTx struct {
	repository.PurchaseOrderRepository
	tx *memTx
}

func (r *orderTx) ListByVendor(ctx context.Context, vendorCode string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, po := range r.tx.store.orders {
		if po.VendorCode == vendorCode {
			cp := *po
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return out, nil
}

type historyTx struct {
	repository.HistoricalPerformanceRepository
	tx *memTx
}

func (r *historyTx) Append(ctx context.Context, snapshot *entity.HistoricalPerformance) error {
	r.tx.history = append(r.tx.history, snapshot)
	return nil
}

// nopLocker el memStore ya serializa.
type nopLocker struct{}

func (nopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }

type failingLocker struct{ err error }

func (l failingLocker) Lock(context.Context, string) (func(), error) { return nil, l.err }
