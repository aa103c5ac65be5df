// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// IssueAccessToken creates a signed token string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	IssueAccessToken(userID, username string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed before merging.
type Service struct {
	userStore     UserStore
	tokenProvider TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(userStore UserStore, tokenProvider TokenProvider) *Service {
	return &Service{
		userStore:     userStore,
		tokenProvider: tokenProvider,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: The pre-checks return friendly Conflict errors in the common
case; a concurrent registration of the same identity slips past them and is
caught by the store's uniqueness constraints, which produce the same
Conflict errors.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err := service.userStore.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err = service.userStore.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           newID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	// Persist the user; the store settles duplicate races.
	if err := service.userStore.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *User
}

/*
Login validates user credentials and issues an access token.

Description: Verifies identity with a constant-time password comparison,
stamps the last-login timestamp, and returns a signed session token.
Unknown-user and wrong-password produce the identical error so clients
cannot enumerate accounts.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userStore.FindByUsername(context, input.Username)

	// If (err != nil) the user does not exist. Generic message to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// Record the successful login before issuing the token.
	loginTime := time.Now()
	if err := service.userStore.RecordLogin(context, user.ID, loginTime); err != nil {
		return nil, fmt.Errorf("auth_service_record_login_failed: %w", err)
	}
	user.LastLoginAt = &loginTime

	// Generate the short-lived access token.
	accessToken, err := service.tokenProvider.IssueAccessToken(user.ID, user.Username, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken: accessToken,
		ExpiresAt:   loginTime.Add(AccessTokenTTL),
		User:        user,
	}, nil
}

// newID returns a time-sortable UUIDv7 string, falling back to v4 when the
// system clock misbehaves.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
