package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only if it still holds our token, so an
// expired lock re-acquired by another caller is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements a per-key advisory lock on top of redis SET NX.
// The lock auto-expires after its TTL, so a crashed holder cannot wedge the
// key forever.
type RedisLocker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Option configures a RedisLocker.
type Option func(*RedisLocker)

// WithTTL overrides the lock expiry. The TTL must comfortably exceed the
// longest sequence executed under the lock.
func WithTTL(ttl time.Duration) Option {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return func(l *RedisLocker) {
		if prefix != "" {
			l.prefix = prefix
		}
	}
}

// NewRedisLocker creates a RedisLocker.
// Panics if client is nil to fail fast during initialization.
func NewRedisLocker(client *redis.Client, opts ...Option) *RedisLocker {
	if client == nil {
		panic("lock: redis client is required")
	}

	l := &RedisLocker{
		client: client,
		prefix: "lock:",
		ttl:    10 * time.Second,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Acquire takes the lock for key. It does not wait: if another holder owns
// the key, ErrNotAcquired is returned immediately and the caller decides
// whether to retry or fail. On success the returned release function must be
// called to free the lock.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	fullKey := l.prefix + key

	ok, err := l.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	release := func() {
		// Release must run even when the acquiring context is already done.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		_ = releaseScript.Run(ctx, l.client, []string{fullKey}, token).Err()
	}
	return release, nil
}
