// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidDocument is returned when a request body is not a JSON object.
var ErrInvalidDocument = errors.New("request body is not a valid JSON:API document")

// RequestDocument is the body of a create or update request.
type RequestDocument[T any] struct {
	Data struct {
		Type       string `json:"type"`
		Attributes T      `json:"attributes"`
	} `json:"data"`
}

// Decode reads a request document from body and returns its attributes.
// An empty body yields zero attributes, which validation then rejects
// attribute by attribute.
func Decode[T any](body io.Reader) (T, error) {
	var doc RequestDocument[T]
	if err := DecodeInto(body, &doc); err != nil {
		var zero T
		return zero, err
	}
	return doc.Data.Attributes, nil
}

// DecodeInto decodes a JSON object from body into dst. An empty body leaves
// dst untouched.
func DecodeInto(body io.Reader, dst any) error {
	if body == nil {
		return nil
	}
	err := json.NewDecoder(body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
}
