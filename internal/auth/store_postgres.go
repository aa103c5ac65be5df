// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/dberr"
)

// # User Store

// PostgresUserStore implements the UserStore interface using pgx.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore.
func NewUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

/*
Create persists a new user record into the users table.

Description: Registration races on the same username/email are settled here
by the table's unique constraints, not by the service-level pre-check. The
violated constraint name selects the client-safe Conflict message.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicates, or connectivity errors
*/
func (store *PostgresUserStore) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err, ConstraintUsername) {
			return apperr.Conflict("Username is already taken")
		}
		if dberr.IsUniqueViolation(err, ConstraintEmail) {
			return apperr.Conflict("Email is already registered")
		}
		return fmt.Errorf("postgres_user_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresUserStore) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		WHERE id = $1`

	return store.scanOne(context, query, id, "User")
}

/*
FindByUsername retrieves a user record by their unique username.

Description: Standard lookup for login and session resolution.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresUserStore) FindByUsername(context context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		WHERE username = $1`

	return store.scanOne(context, query, username, "User")
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresUserStore) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, last_login_at
		FROM users
		WHERE email = $1`

	return store.scanOne(context, query, email, "User")
}

/*
ExistsByID reports whether an account with the given ID exists.

Description: Primary-key probe used by the session middleware on every
authenticated request.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - bool: true when the account exists
  - error: Database errors
*/
func (store *PostgresUserStore) ExistsByID(context context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := store.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_user_store_exists_failed: %w", err)
	}

	return exists, nil
}

/*
RecordLogin stamps the account's last successful login.

Parameters:
  - context: context.Context
  - userID: string
  - loginTime: time.Time

Returns:
  - error: Execution errors
*/
func (store *PostgresUserStore) RecordLogin(context context.Context, userID string, loginTime time.Time) error {
	const query = `UPDATE users SET last_login_at = $2 WHERE id = $1`

	_, err := store.pool.Exec(context, query, userID, loginTime)
	if err != nil {
		return fmt.Errorf("postgres_user_store_record_login_failed: %w", err)
	}

	return nil
}

// scanOne runs a single-row account query and hydrates the entity.
func (store *PostgresUserStore) scanOne(context context.Context, query, argument, resource string) (*User, error) {
	user := &User{}
	err := store.pool.QueryRow(context, query, argument).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.LastLoginAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(resource)
		}
		return nil, fmt.Errorf("postgres_user_store_find_failed: %w", err)
	}

	return user, nil
}
