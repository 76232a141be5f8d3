// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import "errors"

var (
	// ErrInvalidPageSizes is returned by [New] for non-positive sizes or a
	// default size above the maximum.
	ErrInvalidPageSizes = errors.New("invalid page sizes")
	// ErrInvalidPublicURL is returned by [New] for a public URL that is not
	// absolute.
	ErrInvalidPublicURL = errors.New("invalid public url")
)
