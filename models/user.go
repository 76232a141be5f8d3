// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProviderStandard is the provider name of users registered with a
// login/password pair.
const ProviderStandard = "standard"

// User represents an account entity used for authentication and authorization.
// A user is either a standard account with a password digest or an account
// mirrored from an external OAuth provider, which never carries a password.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password holds the plaintext password received during registration or
	// login. It only lives for the duration of a request and is never stored.
	Password string `json:"-"`

	// PasswordDigest is the bcrypt digest of the password. Empty for users
	// coming from an external provider.
	PasswordDigest string `json:"-"`

	// Provider is either [ProviderStandard] or the name of the external OAuth
	// provider the account was created by (e.g. "github").
	Provider string `json:"provider"`

	// Name is the display name taken from the provider profile.
	Name string `json:"name"`

	// URL is the profile URL taken from the provider profile.
	URL string `json:"url"`

	// AvatarURL is the avatar image URL taken from the provider profile.
	AvatarURL string `json:"avatar_url"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsStandard reports whether the user signs in with a login/password pair.
func (u User) IsStandard() bool {
	return u.Provider == ProviderStandard
}

// ProviderProfile is the subset of an external provider's user profile that
// is mirrored into [User] on OAuth login.
type ProviderProfile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatar_url"`
}

// Credentials is the input of the login endpoint. Either Code or the
// Login/Password pair is expected to be set.
type Credentials struct {
	Login    string
	Password string
	Code     string
}

// HasCode reports whether the credentials carry an OAuth authorization code.
func (c Credentials) HasCode() bool {
	return c.Code != ""
}
