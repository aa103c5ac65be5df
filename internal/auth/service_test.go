// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledog/doodledog/internal/auth"
	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/sec"
)

// # Test Doubles

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users map[string]*auth.User // keyed by ID

	createErr      error
	recordLoginErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*auth.User)}
}

func (store *fakeUserStore) Create(_ context.Context, user *auth.User) error {
	if store.createErr != nil {
		return store.createErr
	}
	copied := *user
	store.users[user.ID] = &copied
	return nil
}

func (store *fakeUserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := store.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeUserStore) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range store.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeUserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range store.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeUserStore) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := store.users[id]
	return ok, nil
}

func (store *fakeUserStore) RecordLogin(_ context.Context, userID string, loginTime time.Time) error {
	if store.recordLoginErr != nil {
		return store.recordLoginErr
	}
	if user, ok := store.users[userID]; ok {
		stamp := loginTime
		user.LastLoginAt = &stamp
	}
	return nil
}

// newTestService wires a Service against the fake store and a real HS256
// token provider.
func newTestService(t *testing.T, store *fakeUserStore) *auth.Service {
	t.Helper()
	tokenService, err := sec.NewTokenService("0123456789abcdef0123456789abcdef", "doodledog.app")
	require.NoError(t, err)
	return auth.NewService(store, tokenService)
}

// # Registration

/*
TestService_Register creates a new account and verifies the stored shape.
*/
func TestService_Register(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	user, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira",
		Email:    "mira@doodledog.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "mira", user.Username)
	assert.Equal(t, "mira@doodledog.app", user.Email)

	// The password must be stored hashed, never verbatim.
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct horse", user.PasswordHash))

	assert.Nil(t, user.LastLoginAt)
	assert.Len(t, store.users, 1)
}

/*
TestService_Register_DuplicateUsername rejects a second account with the
same username.
*/
func TestService_Register_DuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "other@doodledog.app", Password: "correct horse",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	assert.Equal(t, "Username is already taken", ae.Message)
}

/*
TestService_Register_DuplicateEmail rejects a second account with the same
email address.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), auth.RegisterInput{
		Username: "someone-else", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	assert.Equal(t, "Email is already registered", ae.Message)
}

/*
TestService_Register_StoreConflict verifies that a constraint violation
surfaced by the store (the losing side of a registration race) is returned
unwrapped.
*/
func TestService_Register_StoreConflict(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = apperr.Conflict("Username is already taken")
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

// # Login

/*
TestService_Login issues a session for valid credentials and stamps the
last login.
*/
func TestService_Login(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "mira", Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.WithinDuration(t, time.Now().Add(auth.AccessTokenTTL), session.ExpiresAt, 5*time.Second)
	require.NotNil(t, session.User.LastLoginAt)

	// The stamp must also be persisted, not just set on the returned copy.
	stored := store.users[session.User.ID]
	require.NotNil(t, stored.LastLoginAt)
}

/*
TestService_Login_UniformFailures verifies that an unknown username and a
wrong password are indistinguishable to the caller.
*/
func TestService_Login_UniformFailures(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.NoError(t, err)

	_, unknownUserErr := service.Login(context.Background(), auth.LoginInput{
		Username: "nobody", Password: "correct horse",
	})
	_, wrongPasswordErr := service.Login(context.Background(), auth.LoginInput{
		Username: "mira", Password: "wrong password",
	})

	require.Error(t, unknownUserErr)
	require.Error(t, wrongPasswordErr)

	unknownAE := apperr.As(unknownUserErr)
	wrongAE := apperr.As(wrongPasswordErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	assert.Equal(t, http.StatusUnauthorized, unknownAE.HTTPStatus)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
	assert.Equal(t, "Invalid username or password", wrongAE.Message)
}

/*
TestService_Login_RecordFailure verifies that a failed last-login stamp
aborts the login rather than issuing a token silently.
*/
func TestService_Login_RecordFailure(t *testing.T) {
	store := newFakeUserStore()
	service := newTestService(t, store)

	_, err := service.Register(context.Background(), auth.RegisterInput{
		Username: "mira", Email: "mira@doodledog.app", Password: "correct horse",
	})
	require.NoError(t, err)

	store.recordLoginErr = assert.AnError

	_, err = service.Login(context.Background(), auth.LoginInput{
		Username: "mira", Password: "correct horse",
	})
	require.Error(t, err)
	assert.Nil(t, apperr.As(err), "storage failures must not map to a client error")
}
