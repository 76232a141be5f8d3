// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the attribute rules of articles, comments and
// registrations.
//
// Every validator reports failed rules as [models.ValidationErrors], one
// entry per failed rule in attribute declaration order, so the transport
// layer can render them as a 422 document without further inspection. Any
// other returned error is a defect (e.g. the uniqueness lookup failed).
//
// Validate accepts optional field names restricting the checked attributes;
// unknown names yield [ErrUnknownField].
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
