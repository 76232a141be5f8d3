// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// digests, random tokens, HTTP response writing and HTTP client
// initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// CurrentUserCtxKey is the key the authorization middleware stores the
	// authenticated user under.
	CurrentUserCtxKey = contextKey("currentUser")

	// AccessTokenCtxKey is the key the authorization middleware stores the
	// presented access token under.
	AccessTokenCtxKey = contextKey("accessToken")
)

// WithCurrentUser returns a copy of ctx carrying the authenticated user and
// the token it presented.
func WithCurrentUser(ctx context.Context, user models.User, token string) context.Context {
	ctx = context.WithValue(ctx, CurrentUserCtxKey, user)
	return context.WithValue(ctx, AccessTokenCtxKey, token)
}

// CurrentUserFromContext retrieves the authenticated user.
//
// ok is false when the request went through no authorization middleware.
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}

// AccessTokenFromContext retrieves the access token presented by the
// authenticated user.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	return token, ok && token != ""
}
