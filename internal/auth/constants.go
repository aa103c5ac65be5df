// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration an access token (and therefore a
	// session) remains valid. There is no refresh mechanism and no
	// server-side revocation list; expiry ends the session.
	AccessTokenTTL = 30 * time.Minute

	// UsernameMinLength and UsernameMaxLength bound acceptable usernames.
	UsernameMinLength = 3
	UsernameMaxLength = 32

	// PasswordMinLength is the smallest password accepted at registration.
	PasswordMinLength = 8
)

// # Database Constraints

// Unique constraint names from the users migration. The store maps their
// violation to the matching duplicate-account message.
const (
	ConstraintUsername = "users_username_key"
	ConstraintEmail    = "users_email_key"
)
