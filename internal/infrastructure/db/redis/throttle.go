package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxLoginFailures = 10
	loginFailWindow  = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per username in Redis.
// Key format: login_fail:<username>, expiring loginFailWindow after the
// first failure in the window.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooMany reports whether the username has exhausted its failure budget in
// the current window.
func (t *LoginThrottle) TooMany(ctx context.Context, username string) (bool, error) {
	val, err := t.client.Get(ctx, t.key(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxLoginFailures, nil
}

// Fail records one failed attempt. The expiry is set only when the counter
// is created, so the window is anchored at the first failure.
func (t *LoginThrottle) Fail(ctx context.Context, username string) error {
	key := t.key(username)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, loginFailWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	return t.client.Del(ctx, t.key(username)).Err()
}

func (t *LoginThrottle) key(username string) string {
	return "login_fail:" + username
}
