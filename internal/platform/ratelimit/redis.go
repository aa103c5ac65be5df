// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements [Limiter] with fixed-window counters in Redis.
//
// The first attempt in a window creates the counter with a TTL equal to the
// window; subsequent attempts increment it. Once the counter passes the
// budget, attempts are rejected until the key expires. Counting is shared by
// every process pointed at the same Redis, which is the point of this
// backend.
type RedisLimiter struct {
	client    *redis.Client
	keyPrefix string
	attempts  int
	window    time.Duration
}

// NewRedisLimiter constructs a [RedisLimiter].
func NewRedisLimiter(client *redis.Client, keyPrefix string, attempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		keyPrefix: keyPrefix,
		attempts:  attempts,
		window:    window,
	}
}

/*
Allow increments the client's window counter and checks it against the budget.

Parameters:
  - context: context.Context
  - key: string (client network address)

Returns:
  - bool: true when the attempt is within budget
  - error: Redis connectivity failures
*/
func (limiter *RedisLimiter) Allow(context context.Context, key string) (bool, error) {
	counterKey := limiter.keyPrefix + key

	count, err := limiter.client.Incr(context, counterKey).Result()
	if err != nil {
		return false, fmt.Errorf("ratelimit_redis_incr_failed: %w", err)
	}

	// Only the first increment in a window sets the expiry; later increments
	// must not extend it or the window would slide forever under load.
	if count == 1 {
		if err := limiter.client.Expire(context, counterKey, limiter.window).Err(); err != nil {
			return false, fmt.Errorf("ratelimit_redis_expire_failed: %w", err)
		}
	}

	return count <= int64(limiter.attempts), nil
}
