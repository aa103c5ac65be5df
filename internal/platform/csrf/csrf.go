// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package csrf implements a double-submit-cookie anti-forgery guard.

A fresh opaque token is issued on every page render. The same value travels to
the browser twice: once as an HTTP-only cookie and once as a hidden form
field. A state-changing POST is accepted only when both values arrive and
match exactly. A third-party site can make the browser submit the form, but
it cannot read the cookie value to echo it into the form body.

The guard keeps no server-side state; regenerating the token on every render
is what bounds replay. It is constructed once and injected into handlers so
tests can exercise it in isolation.
*/
package csrf

import (
	"crypto/subtle"

	"github.com/doodledog/doodledog/internal/platform/sec"
)

// tokenLength is the entropy (in bytes) behind each issued token.
const tokenLength = 32

// Guard issues and validates anti-forgery tokens.
type Guard struct{}

// NewGuard constructs a [Guard].
func NewGuard() *Guard {
	return &Guard{}
}

// Issue returns a fresh random opaque token.
//
// Each GET render of a guarded form must call Issue and overwrite the
// previous cookie; tokens are never reused across responses.
func (guard *Guard) Issue() (string, error) {
	return sec.GenerateSecureToken(tokenLength)
}

// Check reports whether the cookie value and the submitted form value are an
// exact, non-empty match.
//
// The comparison is constant-time. Absence of either value always fails.
func (guard *Guard) Check(cookieValue, formValue string) bool {
	if cookieValue == "" || formValue == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieValue), []byte(formValue)) == 1
}
