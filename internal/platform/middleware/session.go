// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/constants"
	"github.com/doodledog/doodledog/internal/platform/ctxutil"
	"github.com/doodledog/doodledog/internal/platform/respond"
	"github.com/doodledog/doodledog/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify access tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the sec package's
// concrete TokenService, allowing tests to inject their own verifier.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// CredentialStore confirms that a token subject still maps to a live account.
//
// The token alone is not enough: an account can be removed while its token is
// still within lifetime, and such a token must resolve to anonymous.
type CredentialStore interface {
	ExistsByID(context context.Context, userID string) (bool, error)
}

// Session resolves the requesting user from the access-token cookie.
//
// # Flow
//  1. Read the access-token cookie, stripping an optional "Bearer " prefix.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, verify the token; on any failure proceed as anonymous.
//  4. On success, confirm the subject still exists in the credential store;
//     if not (or the store errors), proceed as anonymous.
//  5. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// No failure mode is distinguishable to the client. A bad token is never an
// error; pages that need identity redirect to /login, nothing more.
func Session(verifier TokenVerifier, store CredentialStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.AccessTokenCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			tokenStr := strings.TrimSpace(strings.TrimPrefix(cookie.Value, constants.BearerPrefix))
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				// Expired, tampered, malformed: all identical to no token.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Account Existence ──────────────────────────────────────────
			exists, err := store.ExistsByID(request.Context(), claims.UserID)
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
					"session_account_check_failed", slog.Any("error", err))
				next.ServeHTTP(writer, request)
				return
			}
			if !exists {
				// Account deleted while the token was still live.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireUser blocks anonymous requests to HTML pages by redirecting them to
// the login page with 303 See Other.
//
// # Usage
//
// Must be registered in the router AFTER [Session].
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			http.Redirect(writer, request, constants.LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RedirectAuthenticated sends already-authenticated visitors away from the
// login and register pages to the dashboard.
func RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) != nil {
			http.Redirect(writer, request, constants.DashboardPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAuth blocks anonymous requests to JSON API routes with 401.
//
// # Usage
//
// Must be registered in the router AFTER [Session].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
