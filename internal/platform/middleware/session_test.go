// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledog/doodledog/internal/platform/constants"
	"github.com/doodledog/doodledog/internal/platform/ctxutil"
	"github.com/doodledog/doodledog/internal/platform/middleware"
	"github.com/doodledog/doodledog/internal/platform/sec"
)

// # Test Doubles

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == verifier.validToken {
		return verifier.claims, nil
	}
	return nil, errors.New("invalid token")
}

// fakeCredentialStore reports a fixed set of live account IDs.
type fakeCredentialStore struct {
	existing map[string]bool
	err      error
}

func (store *fakeCredentialStore) ExistsByID(_ context.Context, userID string) (bool, error) {
	if store.err != nil {
		return false, store.err
	}
	return store.existing[userID], nil
}

// identitySink records the claims the session middleware resolved.
func identitySink(captured **sec.AuthClaims) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*captured = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestSession_Resolution runs the cookie-to-identity flow across its failure
modes. Every defect resolves to anonymous; none produce an error response.
*/
func TestSession_Resolution(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "user-123", Username: "mira"}

	tests := []struct {
		name        string
		cookieValue string
		storeIDs    map[string]bool
		storeErr    error
		wantUser    bool
	}{
		{"no_cookie", "", map[string]bool{"user-123": true}, nil, false},
		{"garbage_token", "not-a-real-token", map[string]bool{"user-123": true}, nil, false},
		{"valid_token", "good-token", map[string]bool{"user-123": true}, nil, true},
		{"bearer_prefixed_token", "Bearer good-token", map[string]bool{"user-123": true}, nil, true},
		{"deleted_account", "good-token", map[string]bool{}, nil, false},
		{"store_outage", "good-token", nil, errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{validToken: "good-token", claims: claims}
			store := &fakeCredentialStore{existing: tt.storeIDs, err: tt.storeErr}

			var captured *sec.AuthClaims
			handler := middleware.Session(verifier, store)(identitySink(&captured))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookieValue != "" {
				request.AddCookie(&http.Cookie{
					Name:  constants.AccessTokenCookieName,
					Value: tt.cookieValue,
				})
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			// The middleware itself never rejects.
			assert.Equal(t, http.StatusOK, recorder.Code)

			if tt.wantUser {
				require.NotNil(t, captured)
				assert.Equal(t, "user-123", captured.UserID)
			} else {
				assert.Nil(t, captured)
			}
		})
	}
}

/*
TestRequireUser redirects anonymous visitors to the login page and lets
authenticated ones through.
*/
func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous_redirected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, constants.DashboardPath, nil)
		recorder := httptest.NewRecorder()

		middleware.RequireUser(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusSeeOther, recorder.Code)
		assert.Equal(t, constants.LoginPath, recorder.Header().Get("Location"))
	})

	t.Run("authenticated_passes", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, constants.DashboardPath, nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user-123"})
		recorder := httptest.NewRecorder()

		middleware.RequireUser(next).ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

/*
TestRedirectAuthenticated sends signed-in visitors away from the account
pages.
*/
func TestRedirectAuthenticated(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous_passes", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, constants.LoginPath, nil)
		recorder := httptest.NewRecorder()

		middleware.RedirectAuthenticated(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("authenticated_redirected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, constants.LoginPath, nil)
		ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: "user-123"})
		recorder := httptest.NewRecorder()

		middleware.RedirectAuthenticated(next).ServeHTTP(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusSeeOther, recorder.Code)
		assert.Equal(t, constants.DashboardPath, recorder.Header().Get("Location"))
	})
}

/*
TestRequireAuth returns 401 JSON for anonymous API calls.
*/
func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	recorder := httptest.NewRecorder()

	middleware.RequireAuth(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "application/json")
}
