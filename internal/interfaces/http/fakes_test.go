package http_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/application/usecase"
	"github.com/jhoicas/Proveedores-api/internal/domain"
	"github.com/jhoicas/Proveedores-api/internal/domain/entity"
	rules "github.com/jhoicas/Proveedores-api/internal/domain/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain/repository"
)

// store repositorios en memoria compartidos por los handlers de prueba.
type store struct {
	mu      sync.Mutex
	vendors map[string]*entity.Vendor
	orders  map[string]*entity.PurchaseOrder
	history []*entity.HistoricalPerformance
	users   map[string]*entity.User
}

func newStore() *store {
	return &store{
		vendors: map[string]*entity.Vendor{},
		orders:  map[string]*entity.PurchaseOrder{},
		users:   map[string]*entity.User{},
	}
}

type vendorRepo struct{ *store }

func (s vendorRepo) Create(_ context.Context, v *entity.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vendors[v.VendorCode]; ok {
		return domain.ErrDuplicate
	}
	cp := *v
	s.vendors[v.VendorCode] = &cp
	return nil
}

func (s vendorRepo) GetByCode(_ context.Context, code string) (*entity.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[code]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s vendorRepo) GetForUpdate(ctx context.Context, code string) (*entity.Vendor, error) {
	return s.GetByCode(ctx, code)
}

func (s vendorRepo) Update(_ context.Context, v *entity.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vendors[v.VendorCode]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	s.vendors[v.VendorCode] = &cp
	return nil
}

func (s vendorRepo) UpdateMetrics(_ context.Context, code string, m entity.Metrics, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[code]
	if !ok {
		return domain.ErrNotFound
	}
	v.Metrics, v.UpdatedAt = m, at
	return nil
}

func (s vendorRepo) List(_ context.Context, limit, offset int) ([]*entity.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorCode < out[j].VendorCode })
	return window(out, limit, offset), nil
}

func (s vendorRepo) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vendors[code]; !ok {
		return domain.ErrNotFound
	}
	delete(s.vendors, code)
	return nil
}

type orderRepo struct{ *store }

func (s orderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[po.PONumber]; ok {
		return domain.ErrDuplicate
	}
	cp := *po
	s.orders[po.PONumber] = &cp
	return nil
}

func (s orderRepo) GetByNumber(_ context.Context, n string) (*entity.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	po, ok := s.orders[n]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}

func (s orderRepo) Update(_ context.Context, po *entity.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *po
	s.orders[po.PONumber] = &cp
	return nil
}

func (s orderRepo) Delete(_ context.Context, n string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, n)
	return nil
}

func (s orderRepo) List(_ context.Context, f repository.PurchaseOrderFilter, limit, offset int) ([]*entity.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.PurchaseOrder
	for _, po := range s.orders {
		if (f.VendorCode == "" || po.VendorCode == f.VendorCode) && (f.Status == "" || po.Status == f.Status) {
			cp := *po
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return window(out, limit, offset), nil
}

func (s orderRepo) ListByVendor(ctx context.Context, code string) ([]*entity.PurchaseOrder, error) {
	return s.List(ctx, repository.PurchaseOrderFilter{VendorCode: code}, 0, 0)
}

type historyRepo struct{ *store }

func (s historyRepo) Append(_ context.Context, h *entity.HistoricalPerformance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *h
	s.history = append(s.history, &cp)
	return nil
}

func (s historyRepo) ListByVendor(_ context.Context, code string, from, to *time.Time, limit, offset int) ([]*entity.HistoricalPerformance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.HistoricalPerformance
	for i := len(s.history) - 1; i >= 0; i-- {
		h := s.history[i]
		if h.VendorCode != code || (from != nil && h.Date.Before(*from)) || (to != nil && h.Date.After(*to)) {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	return window(out, limit, offset), nil
}

func (s historyRepo) DeleteByVendor(_ context.Context, code string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.history[:0]
	var n int64
	for _, h := range s.history {
		if h.VendorCode == code {
			n++
			continue
		}
		kept = append(kept, h)
	}
	s.history = kept
	return n, nil
}

type userRepo struct{ *store }

func (s userRepo) Create(_ context.Context, u *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.Email] = &cp
	return nil
}

func (s userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func window[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

// fixedRecomputer devuelve métricas fijas y registra los conjuntos pedidos.
type fixedRecomputer struct {
	mu      sync.Mutex
	metrics entity.Metrics
	calls   []rules.MetricSet
	err     error
}

func (r *fixedRecomputer) Recompute(_ context.Context, code string, set rules.MetricSet) (*performance.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, set)
	if r.err != nil {
		return nil, r.err
	}
	return &performance.Outcome{VendorCode: code, Metrics: r.metrics, Changed: set.Metrics()}, nil
}

func (r *fixedRecomputer) OnOrderChange(ctx context.Context, ch performance.OrderChange) (*performance.Outcome, error) {
	return r.Recompute(ctx, ch.VendorCode, performance.AffectedMetrics(ch))
}

type fakeScorecard struct{}

func (fakeScorecard) GenerateScorecard(_ context.Context, card *usecase.Scorecard) ([]byte, error) {
	return []byte("%PDF-1.4 " + card.Vendor.VendorCode), nil
}

func domainLockBusy() error { return domain.ErrLockNotObtained }

type fakeWorkbook struct{}

func (fakeWorkbook) ExportHistory(_ context.Context, v *entity.Vendor, history []*entity.HistoricalPerformance) ([]byte, error) {
	return []byte(fmt.Sprintf("PK %s %d", v.VendorCode, len(history))), nil
}
