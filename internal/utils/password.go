// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyDigest is compared against when the user does not exist, so a failed
// login costs a bcrypt comparison either way.
var dummyDigest, _ = bcrypt.GenerateFromPassword([]byte("dummy password"), bcrypt.DefaultCost)

// PasswordHasher produces and checks bcrypt password digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a PasswordHasher using cost. A cost outside the
// bcrypt range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt digest of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether password matches digest. An empty digest is
// compared against a dummy one and never matches.
func (h *PasswordHasher) Compare(digest, password string) bool {
	if digest == "" {
		_ = bcrypt.CompareHashAndPassword(dummyDigest, []byte(password))
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	return err == nil
}
