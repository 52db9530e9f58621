package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrAlreadyHeld is returned when the lease for a key is held by another caller.
var ErrAlreadyHeld = errors.New("lease already held")

// Locker hands out short-lived exclusive leases keyed by string. The returned
// release func is safe to call exactly once, typically via defer.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// New returns a Redis-backed locker, or an in-process one when no Redis
// client is available (single-instance deployments, tests).
func New(client *redis.Client, ttl time.Duration) Locker {
	if client == nil {
		return &localLocker{held: make(map[string]bool)}
	}
	return &redisLocker{client: client, ttl: ttl}
}

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lease %s: %w", key, err)
	}
	if !ok {
		return nil, ErrAlreadyHeld
	}
	return func() {
		// release with a fresh context so cancellation of the caller's
		// context cannot leave the lease stuck until the TTL expires
		l.client.Del(context.Background(), key)
	}, nil
}

type localLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *localLocker) Acquire(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] {
		return nil, ErrAlreadyHeld
	}
	l.held[key] = true
	return func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}, nil
}
