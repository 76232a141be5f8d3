// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessToken is the opaque bearer credential bound to exactly one user.
//
// A user owns at most one token at a time: it is created on the first
// successful authentication, handed out unchanged on every later one, and
// removed on logout.
type AccessToken struct {
	// AccessTokenID is the internal identifier of the token row.
	AccessTokenID int64 `json:"-"`

	// Token is the random hex string presented in the Authorization header.
	Token string `json:"token"`

	// UserID references the owner of the token.
	UserID int64 `json:"-"`

	// CreatedAt is the moment the token was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AccessToken model.
func (t AccessToken) TableName() string {
	return "access_tokens"
}

// String returns the raw token value.
func (t AccessToken) String() string {
	return t.Token
}
