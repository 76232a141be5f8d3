// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// AccessTokenBytes is the amount of entropy of an access token.
const AccessTokenBytes = 32

// GenerateAccessToken returns AccessTokenBytes random bytes from crypto/rand,
// hex-encoded.
func GenerateAccessToken() (string, error) {
	buf := make([]byte, AccessTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
