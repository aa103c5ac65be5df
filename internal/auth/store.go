// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserStore defines the data access contract for user accounts.
//
// Accounts are created on registration and mutated on login (last-login
// timestamp); this subsystem never deletes them.
type UserStore interface {

	/*
		Create persists a brand-new user account.

		Description: The store's uniqueness constraints are the authoritative
		duplicate check; a violation must surface as a Conflict error naming
		the colliding field, distinguishable from generic failures.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Conflict on duplicate username/email, or persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		ExistsByID reports whether an account with the given ID exists.

		Description: Used by the session middleware on every authenticated
		request; kept separate from FindByID so it can stay a cheap
		primary-key probe.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - bool: true when the account exists
		  - error: Database retrieval failures
	*/
	ExistsByID(context context.Context, id string) (bool, error)

	/*
		RecordLogin stamps the account's last successful login.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - loginTime: time.Time

		Returns:
		  - error: Persistence failures
	*/
	RecordLogin(context context.Context, userID string, loginTime time.Time) error
}
