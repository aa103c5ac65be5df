// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package csrf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodledog/doodledog/internal/platform/csrf"
)

/*
TestGuard_Issue verifies that issued tokens are non-empty and unique.
*/
func TestGuard_Issue(t *testing.T) {
	guard := csrf.NewGuard()

	first, err := guard.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := guard.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestGuard_Check verifies the anti-forgery comparison rules: both values
must be present and identical.
*/
func TestGuard_Check(t *testing.T) {
	guard := csrf.NewGuard()

	token, err := guard.Issue()
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
		form   string
		want   bool
	}{
		{"matching_pair", token, token, true},
		{"mismatched_form", token, token + "x", false},
		{"missing_cookie", "", token, false},
		{"missing_form", token, "", false},
		{"both_missing", "", "", false},
		{"swapped_tokens", token, "some-other-token", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guard.Check(tt.cookie, tt.form))
		})
	}
}
