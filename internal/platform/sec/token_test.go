// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledog/doodledog/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

/*
TestNewTokenService_SecretLength verifies that weak signing secrets are
rejected at construction time.
*/
func TestNewTokenService_SecretLength(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"long_enough", testSecret, false},
		{"exactly_32", strings.Repeat("x", 32), false},
		{"too_short", "short-secret", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sec.NewTokenService(tt.secret, "doodledog.app")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestTokenService_Roundtrip verifies that an issued token verifies and
carries the identity claims intact.
*/
func TestTokenService_Roundtrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "doodledog.app")
	require.NoError(t, err)

	token, err := service.IssueAccessToken("user-123", "mira", 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "mira", claims.Username)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "doodledog.app", claims.Issuer)
}

/*
TestTokenService_TamperedToken verifies that any modification of the token
string fails verification.
*/
func TestTokenService_TamperedToken(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "doodledog.app")
	require.NoError(t, err)

	token, err := service.IssueAccessToken("user-123", "mira", 30*time.Minute)
	require.NoError(t, err)

	// Flip one character in the signature segment.
	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = service.VerifyToken(tampered)
	assert.Error(t, err)
}

/*
TestTokenService_Expiry verifies that an expired token is rejected.
*/
func TestTokenService_Expiry(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "doodledog.app")
	require.NoError(t, err)

	// A negative lifetime yields a token that expired at issuance.
	token, err := service.IssueAccessToken("user-123", "mira", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that a token signed with one secret
does not verify under another.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	issuing, err := sec.NewTokenService(testSecret, "doodledog.app")
	require.NoError(t, err)

	verifying, err := sec.NewTokenService(strings.Repeat("y", 32), "doodledog.app")
	require.NoError(t, err)

	token, err := issuing.IssueAccessToken("user-123", "mira", 30*time.Minute)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_Garbage verifies that non-JWT input is rejected.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "doodledog.app")
	require.NoError(t, err)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.VerifyToken(input)
		assert.Error(t, err)
	}
}

/*
TestGenerateSecureToken verifies length and uniqueness of random tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// 32 bytes of entropy in unpadded base64url is 43 characters.
	assert.Len(t, first, 43)
}
