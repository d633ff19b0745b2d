package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

type memVendors struct {
	mu sync.Mutex
	m  map[string]*entity.Vendor
}

func newMemVendors(codes ...string) *memVendors {
	r := &memVendors{m: map[string]*entity.Vendor{}}
	for _, c := range codes {
		r.m[c] = &entity.Vendor{VendorCode: c, Name: "Proveedor " + c}
	}
	return r
}

func (r *memVendors) Create(_ context.Context, v *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[v.VendorCode]; ok {
		return domain.ErrDuplicate
	}
	cp := *v
	r.m[v.VendorCode] = &cp
	return nil
}

func (r *memVendors) GetByCode(_ context.Context, code string) (*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.m[code]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *memVendors) GetForUpdate(ctx context.Context, code string) (*entity.Vendor, error) {
	return r.GetByCode(ctx, code)
}

func (r *memVendors) Update(_ context.Context, v *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[v.VendorCode]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.m[v.VendorCode] = &cp
	return nil
}

func (r *memVendors) UpdateMetrics(_ context.Context, code string, m entity.Metrics, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[code].Metrics = m
	r.m[code].UpdatedAt = at
	return nil
}

func (r *memVendors) List(_ context.Context, limit, offset int) ([]*entity.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Vendor
	for _, v := range r.m {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorCode < out[j].VendorCode })
	return page(out, limit, offset), nil
}

func (r *memVendors) Delete(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m, code)
	return nil
}

type memOrders struct {
	mu sync.Mutex
	m  map[string]*entity.PurchaseOrder
}

func newMemOrders() *memOrders { return &memOrders{m: map[string]*entity.PurchaseOrder{}} }

func (r *memOrders) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[po.PONumber]; ok {
		return domain.ErrDuplicate
	}
	cp := *po
	r.m[po.PONumber] = &cp
	return nil
}

func (r *memOrders) GetByNumber(_ context.Context, n string) (*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	po, ok := r.m[n]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (r *memOrders) Update(_ context.Context, po *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[po.PONumber]; !ok {
		return domain.ErrNotFound
	}
	cp := *po
	r.m[po.PONumber] = &cp
	return nil
}

func (r *memOrders) Delete(_ context.Context, n string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[n]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m, n)
	return nil
}

func (r *memOrders) List(_ context.Context, f repository.PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.PurchaseOrder
	for _, po := range r.m {
		if f.VendorCode != "" && po.VendorCode != f.VendorCode {
			continue
		}
		if f.Status != "" && po.Status != f.Status {
			continue
		}
		cp := *po
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return page(out, limit, offset), nil
}

func (r *memOrders) ListByVendor(ctx context.Context, vendorCode string) ([]*entity.PurchaseOrder, error) {
	return r.List(ctx, repository.PurchaseOrderFilter{VendorCode: vendorCode}, 1<<30, 0)
}

type memHistory struct {
	mu   sync.Mutex
	rows []*entity.HistoricalPerformance
}

func (r *memHistory) Append(_ context.Context, h *entity.HistoricalPerformance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, h)
	return nil
}

func (r *memHistory) ListByVendor(_ context.Context, code string, from, to *time.Time, limit, offset int) ([]*entity.HistoricalPerformance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.HistoricalPerformance
	for i := len(r.rows) - 1; i >= 0; i-- {
		h := r.rows[i]
		if h.VendorCode != code {
			continue
		}
		if from != nil && h.Date.Before(*from) {
			continue
		}
		if to != nil && h.Date.After(*to) {
			continue
		}
		out = append(out, h)
	}
	return page(out, limit, offset), nil
}

func (r *memHistory) DeleteByVendor(_ context.Context, code string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*entity.HistoricalPerformance
	var n int64
	for _, h := range r.rows {
		if h.VendorCode == code {
			n++
			continue
		}
		kept = append(kept, h)
	}
	r.rows = kept
	return n, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

// recordingNotifier guarda los cambios recibidos; err simula un recálculo fallido.
type recordingNotifier struct {
	mu      sync.Mutex
	changes []performance.OrderChange
	err     error
}

func (n *recordingNotifier) OnOrderChange(_ context.Context, ch performance.OrderChange) (*performance.Outcome, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, ch)
	if n.err != nil {
		return nil, n.err
	}
	return &performance.Outcome{VendorCode: ch.VendorCode}, nil
}

func (n *recordingNotifier) last() performance.OrderChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.changes[len(n.changes)-1]
}

type stubRecomputer struct {
	out *performance.Outcome
	set rules.MetricSet
}

func (s *stubRecomputer) Recompute(_ context.Context, code string, set rules.MetricSet) (*performance.Outcome, error) {
	s.set = set
	if s.out == nil {
		return nil, domain.ErrNotFound
	}
	return s.out, nil
}

var errBoom = errors.New("boom")
