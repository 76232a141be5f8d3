// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from user supplied text.
type Sanitizer struct {
	plain *bluemonday.Policy
	rich  *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer. Plain text loses every tag, rich text
// keeps the user generated content subset of HTML.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		plain: bluemonday.StrictPolicy(),
		rich:  bluemonday.UGCPolicy(),
	}
}

// Plain removes all markup from s and trims surrounding whitespace.
func (s *Sanitizer) Plain(text string) string {
	return strings.TrimSpace(s.plain.Sanitize(text))
}

// Rich removes unsafe markup from s and trims surrounding whitespace.
func (s *Sanitizer) Rich(text string) string {
	return strings.TrimSpace(s.rich.Sanitize(text))
}
