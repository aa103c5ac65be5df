// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package ratelimit caps authentication attempts per client address.

It defines a small [Limiter] contract with two implementations:

  - MemoryLimiter: per-process token buckets (golang.org/x/time/rate). This
    is the default; counters reset on restart, which is acceptable for this
    component's threat model.
  - RedisLimiter: fixed-window counters in Redis for deployments that need
    attempt counting across multiple processes.

Both are explicit, injectable objects rather than package-level state, so
handlers can be tested with an isolated limiter and the backend can be
swapped by configuration.
*/
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a client may make another authentication attempt.
type Limiter interface {

	/*
		Allow reports whether the client identified by key may proceed.

		Parameters:
		  - context: context.Context
		  - key: string (client network address)

		Returns:
		  - bool: true when the attempt is within budget
		  - error: Backend failures (memory implementation never errors)
	*/
	Allow(context context.Context, key string) (bool, error)
}

// # In-Memory Limiter

// memoryClient pairs a token bucket with its last activity timestamp so idle
// entries can be evicted.
type memoryClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter tracks one token bucket per client key.
//
// The bucket starts full with `attempts` tokens and refills at a rate of
// `attempts` per `window`, so a client gets at most `attempts` tries within
// any window before being rejected.
type MemoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*memoryClient

	attempts int
	window   time.Duration

	// now is injectable for deterministic tests.
	now func() time.Time
}

// NewMemoryLimiter constructs a [MemoryLimiter] and starts a background
// sweep that evicts idle client entries. The sweep stops when the provided
// context is cancelled.
func NewMemoryLimiter(context context.Context, attempts int, window time.Duration) *MemoryLimiter {
	limiter := &MemoryLimiter{
		clients:  make(map[string]*memoryClient),
		attempts: attempts,
		window:   window,
		now:      time.Now,
	}

	go limiter.sweep(context)

	return limiter
}

/*
Allow consumes one attempt from the client's bucket.

Parameters:
  - context: context.Context (unused; present to satisfy [Limiter])
  - key: string

Returns:
  - bool: true when the attempt is within budget
  - error: always nil
*/
func (limiter *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	currentTime := limiter.now()

	client, found := limiter.clients[key]
	if !found {
		perSecond := float64(limiter.attempts) / limiter.window.Seconds()
		client = &memoryClient{
			limiter: rate.NewLimiter(rate.Limit(perSecond), limiter.attempts),
		}
		limiter.clients[key] = client
	}

	client.lastSeen = currentTime

	return client.limiter.AllowN(currentTime, 1), nil
}

// sweep periodically deletes entries for clients that have been idle long
// enough for their buckets to be full again.
func (limiter *MemoryLimiter) sweep(context context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			limiter.mu.Lock()
			currentTime := limiter.now()
			for key, client := range limiter.clients {
				if currentTime.Sub(client.lastSeen) > clientIdleTTL {
					delete(limiter.clients, key)
				}
			}
			limiter.mu.Unlock()
		case <-context.Done():
			return
		}
	}
}

const (
	// sweepInterval is how often the eviction pass runs.
	sweepInterval = 1 * time.Minute

	// clientIdleTTL is how long a client must be idle before its entry is dropped.
	clientIdleTTL = 3 * time.Minute
)
