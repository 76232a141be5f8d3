// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAuthentication covers every rejected credential: unknown login,
	// wrong password, refused OAuth code.
	ErrAuthentication = errors.New("authentication failed")
	// ErrAuthorization covers a missing or unknown bearer token and
	// mutations of articles the caller does not own.
	ErrAuthorization = errors.New("not authorized")
	ErrNotFound      = errors.New("record not found")

	ErrTokenIssuance         = errors.New("could not issue unique access token")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
