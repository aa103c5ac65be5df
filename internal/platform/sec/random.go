// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package sec

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateSecureToken returns a URL-safe random string built from byteLength
// bytes of cryptographically secure entropy.
//
// It is used for opaque one-shot values such as anti-forgery tokens.
func GenerateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buffer), nil
}
