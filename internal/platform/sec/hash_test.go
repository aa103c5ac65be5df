// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledog/doodledog/internal/platform/sec"
)

/*
TestHashPassword_Roundtrip verifies that a hashed password verifies against
the original and nothing else.
*/
func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The hash is salted and must never equal the plaintext.
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("correct horse battery stapl", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_UniqueSalts verifies that hashing the same password twice
produces different digests.
*/
func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := sec.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	second, err := sec.HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, sec.CheckPasswordHash("hunter2hunter2", first))
	assert.True(t, sec.CheckPasswordHash("hunter2hunter2", second))
}

/*
TestCheckPasswordHash_MalformedHash verifies that garbage hashes never
verify.
*/
func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	assert.False(t, sec.CheckPasswordHash("anything", ""))
}
