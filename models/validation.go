// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Validation messages reported per attribute.
const (
	MsgBlank = "can't be blank"
	MsgTaken = "has already been taken"
	// MsgPasswordTooLong is reported for passwords bcrypt cannot hash.
	MsgPasswordTooLong = "is too long (maximum is 72 bytes)"
)

// ValidationError describes a single failed rule on a single attribute.
type ValidationError struct {
	// Attribute is the wire name of the invalid attribute (e.g. "title").
	Attribute string
	// Message is the human-readable description of the failed rule.
	Message string
}

// ValidationErrors is the list of every rule an entity failed. It implements
// error so it can travel up to the transport layer unchanged.
type ValidationErrors []ValidationError

// Add appends a failure for attribute.
func (v *ValidationErrors) Add(attribute, message string) {
	*v = append(*v, ValidationError{Attribute: attribute, Message: message})
}

// Empty reports whether no rule failed.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Attribute+" "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
