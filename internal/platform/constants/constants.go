// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package constants provides centralized, immutable values shared across the
DoodleDog web application.

It defines default timeouts, authentication cookie settings, and rate-limit
policy that are shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Authentication: Cookie names and token transport settings.
  - Rate Limiting: Attempt budgets for sensitive endpoints.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "doodledog-web"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// TokenIssuer is the standard 'iss' claim in access tokens.
	TokenIssuer = "doodledog.app"

	// AccessTokenCookieName is the cookie that carries the signed access token.
	AccessTokenCookieName = "access_token"

	// CSRFCookieName is the cookie that carries the anti-forgery token.
	CSRFCookieName = "csrf_token"

	// BearerPrefix is an optional literal prefix some clients prepend to the
	// access token cookie value, mirroring the Authorization header format.
	BearerPrefix = "Bearer "
)

// # Page Locations

const (
	// LoginPath is where unauthenticated visitors are redirected.
	LoginPath = "/login"

	// DashboardPath is where authenticated visitors land after login.
	DashboardPath = "/dashboard"
)

// # Rate Limiting

const (
	// AuthRateLimitAttempts is the number of authentication attempts allowed
	// per client address within AuthRateLimitWindow.
	AuthRateLimitAttempts = 5

	// AuthRateLimitWindow is the rolling window for authentication attempts.
	AuthRateLimitWindow = 60 * time.Second

	// RateLimitCleanupInterval is how often idle client entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Protocol Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixRateLimit = "ratelimit:auth:"
)
