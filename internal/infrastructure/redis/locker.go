package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Proveedores-api/internal/application/performance"
	"github.com/jhoicas/Proveedores-api/internal/domain"
)

var _ performance.VendorLocker = (*VendorLocker)(nil)

const (
	lockKeyPrefix = "vendor-metrics:"
	retryBackoff  = 100 * time.Millisecond
)

// VendorLocker candado por proveedor compartido entre instancias (redislock).
// El TTL acota cuánto puede quedar tomado si la instancia muere antes de liberar.
type VendorLocker struct {
	locker   *redislock.Client
	ttl      time.Duration
	maxRetry int
	log      zerolog.Logger
}

// NewVendorLocker construye el candado sobre un cliente go-redis.
// Reintenta con backoff lineal durante medio TTL antes de rendirse.
func NewVendorLocker(client redislock.RedisClient, ttl time.Duration, log zerolog.Logger) *VendorLocker {
	retries := int(ttl / 2 / retryBackoff)
	if retries < 1 {
		retries = 1
	}
	return &VendorLocker{
		locker:   redislock.New(client),
		ttl:      ttl,
		maxRetry: retries,
		log:      log,
	}
}

// Lock obtiene el candado del proveedor. Devuelve domain.ErrLockNotObtained si sigue ocupado
// tras agotar los reintentos.
func (l *VendorLocker) Lock(ctx context.Context, vendorCode string) (func(), error) {
	key := lockKeyPrefix + vendorCode
	lk, err := l.locker.Obtain(ctx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(retryBackoff), l.maxRetry),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, domain.ErrLockNotObtained
		}
		return nil, fmt.Errorf("obtener candado %s: %w", key, err)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// ctx puede estar cancelado; liberar igual.
		if err := lk.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.log.Warn().Err(err).Str("key", key).Msg("no se pudo liberar el candado")
		}
	}, nil
}
