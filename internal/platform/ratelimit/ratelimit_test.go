// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

// In-package so the test can pin the limiter's clock.
package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLimiter builds a MemoryLimiter with a controllable clock and no
// background sweep.
func newTestLimiter(attempts int, window time.Duration) (*MemoryLimiter, *time.Time) {
	currentTime := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	limiter := &MemoryLimiter{
		clients:  make(map[string]*memoryClient),
		attempts: attempts,
		window:   window,
		now:      func() time.Time { return currentTime },
	}

	return limiter, &currentTime
}

/*
TestMemoryLimiter_Budget verifies that a client gets exactly the configured
number of attempts within the window.
*/
func TestMemoryLimiter_Budget(t *testing.T) {
	limiter, _ := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	for attempt := 1; attempt <= 5; attempt++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d should be within budget", attempt)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "sixth attempt should be rejected")
}

/*
TestMemoryLimiter_WindowRecovery verifies that the budget refills after the
window elapses.
*/
func TestMemoryLimiter_WindowRecovery(t *testing.T) {
	limiter, clock := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	for attempt := 0; attempt < 6; attempt++ {
		_, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
	}

	// The full window refills the whole budget.
	*clock = clock.Add(time.Minute)

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "attempt after the window should be allowed again")
}

/*
TestMemoryLimiter_IndependentClients verifies that one client exhausting
its budget does not affect another.
*/
func TestMemoryLimiter_IndependentClients(t *testing.T) {
	limiter, _ := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	for attempt := 0; attempt < 6; attempt++ {
		_, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "a different client has its own budget")
}

/*
TestMemoryLimiter_SweepEvictsIdle verifies the idle-eviction criterion used
by the background sweep.
*/
func TestMemoryLimiter_SweepEvictsIdle(t *testing.T) {
	limiter, clock := newTestLimiter(5, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.Len(t, limiter.clients, 1)

	// Replicate one eviction pass after the idle TTL.
	*clock = clock.Add(clientIdleTTL + time.Second)
	limiter.mu.Lock()
	currentTime := limiter.now()
	for key, client := range limiter.clients {
		if currentTime.Sub(client.lastSeen) > clientIdleTTL {
			delete(limiter.clients, key)
		}
	}
	limiter.mu.Unlock()

	assert.Empty(t, limiter.clients)
}
