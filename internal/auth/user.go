// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package auth implements the user identity and session lifecycle.

It defines the core domain entity (User) and the logic for registration,
login, and cookie-based session resolution.

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to user
identity. Sessions themselves are stateless signed tokens; the only
persistent record is the account row.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of DoodleDog.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"` // Nil until the first successful login.
}

// # Field Identifiers

// Global field names for validation and form mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldCSRF     = "csrf_token"
)
