// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "slices"

// Field name constants used to restrict validation to a subset of
// attributes. They double as the wire names of the attributes, so every
// reported [models.ValidationError] points at the JSON:API attribute.
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSlug     = "slug"
	FieldLogin    = "login"
	FieldPassword = "password"
)

// scope answers which attributes of a Validate call are checked.
type scope struct {
	fields []string
}

func newScope(known []string, fields []string) (scope, error) {
	for _, f := range fields {
		if !slices.Contains(known, f) {
			return scope{}, ErrUnknownField
		}
	}
	return scope{fields: fields}, nil
}

// has reports whether field is in scope. An empty scope covers every field.
func (s scope) has(field string) bool {
	return len(s.fields) == 0 || slices.Contains(s.fields, field)
}
