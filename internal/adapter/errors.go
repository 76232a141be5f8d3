// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("provider rejected credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("provider internal error")

	// ErrCodeRejected is returned when the provider answers the code exchange
	// with an error payload such as bad_verification_code.
	ErrCodeRejected = errors.New("authorization code rejected by provider")
	// ErrEmptyProviderToken is returned when the exchange succeeds without an
	// access token.
	ErrEmptyProviderToken = errors.New("provider returned empty access token")
	ErrInvalidProfile     = errors.New("provider returned profile without login")
	ErrNotConfigured      = errors.New("oauth provider is not configured")
)

// IsRejection reports whether err means the provider refused the supplied
// code or token, as opposed to a transport or provider failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrCodeRejected) ||
		errors.Is(err, ErrEmptyProviderToken) ||
		errors.Is(err, ErrInvalidProfile) ||
		errors.Is(err, ErrNotConfigured) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}
