// Package revocation stores revoked access tokens in Redis until they would
// have expired on their own.
package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
)

const (
	DefaultKeyPrefix = "revoked_token:"
	revokedMarker    = "revoked"
)

type RedisLedger struct {
	client  redis.Cmdable
	prefix  string
	timeout time.Duration
}

// NewRedisLedger builds a ledger over client. A zero timeout leaves the caller's
// context deadline untouched.
func NewRedisLedger(client redis.Cmdable, prefix string, timeout time.Duration) ports.RevocationLedger {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisLedger{
		client:  client,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (l *RedisLedger) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTTL, ttl)
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	// SET with EX is atomic: the marker never exists without its expiry.
	if err := l.client.Set(ctx, l.key(token), revokedMarker, ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to revoke token: %v", domain.ErrDependencyUnavailable, err)
	}
	return nil
}

func (l *RedisLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	n, err := l.client.Exists(ctx, l.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: failed to check revocation: %v", domain.ErrDependencyUnavailable, err)
	}
	return n > 0, nil
}

func (l *RedisLedger) key(token string) string {
	return l.prefix + token
}

func (l *RedisLedger) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.timeout)
}
