package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Angger-Raka/aplikasi-absensi/config"
	pkgerrors "github.com/Angger-Raka/aplikasi-absensi/pkg/errors"
	pkgredis "github.com/Angger-Raka/aplikasi-absensi/pkg/redis"
)

// DateLocker serializes imports per attendance date.
// Lock fails fast with ErrImportInProgress instead of waiting.
type DateLocker interface {
	Lock(ctx context.Context, date string) (unlock func(), err error)
}

// ── in-process ──

type localDateLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalDateLocker guards dates within one process.
func NewLocalDateLocker() DateLocker {
	return &localDateLocker{held: make(map[string]struct{})}
}

func (l *localDateLocker) Lock(_ context.Context, date string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[date]; busy {
		return nil, fmt.Errorf("%w: %s", ErrImportInProgress, date)
	}
	l.held[date] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, date)
			l.mu.Unlock()
		})
	}, nil
}

// ── redis ──

// LockClient is the subset of pkg/redis.Client the Redis locker needs.
type LockClient interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

type redisDateLocker struct {
	client LockClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisDateLocker guards dates across processes sharing one Redis.
// ttl bounds how long a crashed importer can hold a date.
func NewRedisDateLocker(client LockClient, ttl time.Duration, logger *zap.Logger) DateLocker {
	return &redisDateLocker{client: client, ttl: ttl, logger: logger}
}

func (l *redisDateLocker) Lock(ctx context.Context, date string) (func(), error) {
	key := "import:" + date
	token, err := l.client.AcquireLock(ctx, key, l.ttl)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrLockNotAcquired) {
			return nil, fmt.Errorf("%w: %s", ErrImportInProgress, date)
		}
		l.logger.Error("failed to acquire import lock", zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("acquire import lock: %w", err)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// release even when the import's context is already cancelled
			if err := l.client.ReleaseLock(context.Background(), key, token); err != nil {
				l.logger.Warn("failed to release import lock, it expires after its ttl",
					zap.String("date", date), zap.Duration("ttl", l.ttl), zap.Error(err))
			}
		})
	}, nil
}

// NewDateLockerFromConfig returns the Redis locker when redis.enabled is set and
// reachable, the in-process locker otherwise. closeFn releases the connection.
func NewDateLockerFromConfig(cfg *config.Config, logger *zap.Logger) (locker DateLocker, closeFn func()) {
	if !cfg.Redis.Enabled {
		return NewLocalDateLocker(), func() {}
	}

	client, err := pkgredis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-process import lock", zap.Error(err))
		return NewLocalDateLocker(), func() {}
	}
	return NewRedisDateLocker(client, cfg.Import.LockTTL, logger), func() { _ = client.Close() }
}
