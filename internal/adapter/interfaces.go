// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the external OAuth provider used by the code
// exchange login.
//
// The primary abstraction is [OAuthProvider], which decouples the auth
// service from the provider protocol. The package ships a GitHub
// implementation ([NewGitHubProvider]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is]; [IsRejection] tells a
// refused code apart from a provider outage.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/oauth_provider_mock.go -package=mock

// OAuthProvider exchanges authorization codes and fetches user profiles from
// an external OAuth provider.
type OAuthProvider interface {
	// Name is the provider name stored on the users it authenticates.
	Name() string

	// Exchange trades an authorization code for a provider access token.
	// An error payload from the provider yields [ErrCodeRejected], a
	// response without a token yields [ErrEmptyProviderToken].
	Exchange(ctx context.Context, code string) (string, error)

	// Profile fetches the profile of the user owning providerToken.
	Profile(ctx context.Context, providerToken string) (models.ProviderProfile, error)
}
