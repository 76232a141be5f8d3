// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errInvalidBody is returned for a request body that is not a JSON:API
	// document.
	errInvalidBody = errors.New("invalid request body")

	// errRateLimited is returned when a client exceeded the login rate.
	errRateLimited = errors.New("rate limit exceeded")

	// errNoCurrentUser means a protected handler ran without the
	// authorization middleware in front of it.
	errNoCurrentUser = errors.New("no current user in request context")
)
