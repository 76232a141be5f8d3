// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonapi holds the JSON:API document types of the HTTP API and the
// serializers turning domain models into them.
package jsonapi

import (
	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/models"
)

// Resource types.
const (
	TypeArticle     = "article"
	TypeComment     = "comment"
	TypeUser        = "user"
	TypeAccessToken = "access_token"
)

// ResourceIdentifier identifies a resource without its attributes.
type ResourceIdentifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Relationship links a resource to another one.
type Relationship struct {
	Data ResourceIdentifier `json:"data"`
}

// Resource is a single resource object.
type Resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    any                     `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Document is a top-level success document. Data holds a [Resource] or a
// slice of them; Links and Meta are only set on collections.
type Document struct {
	Data  any               `json:"data"`
	Links *pagination.Links `json:"links,omitempty"`
	Meta  *pagination.Meta  `json:"meta,omitempty"`
}

// ErrorSource points at the part of the request an error relates to.
type ErrorSource struct {
	Pointer string `json:"pointer"`
}

// ErrorObject is a single entry of an error document.
type ErrorObject struct {
	Status string       `json:"status,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
	Title  string       `json:"title,omitempty"`
	Detail string       `json:"detail"`
}

// ErrorDocument is a top-level error document.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// NewErrorDocument returns a document holding a single error.
func NewErrorDocument(status, pointer, title, detail string) ErrorDocument {
	obj := ErrorObject{Status: status, Title: title, Detail: detail}
	if pointer != "" {
		obj.Source = &ErrorSource{Pointer: pointer}
	}
	return ErrorDocument{Errors: []ErrorObject{obj}}
}

// Single wraps one resource into a document.
func Single(r Resource) Document {
	return Document{Data: r}
}

// Collection wraps a page of resources into a document. resources is never
// serialized as null.
func Collection(resources []Resource, page pagination.Page) Document {
	if resources == nil {
		resources = []Resource{}
	}
	return Document{
		Data:  resources,
		Links: &page.Links,
		Meta:  &page.Meta,
	}
}

// ValidationErrors renders every failed rule as its own error object pointing
// at the offending attribute.
func ValidationErrors(v models.ValidationErrors) ErrorDocument {
	objects := make([]ErrorObject, 0, len(v))
	for _, e := range v {
		objects = append(objects, ErrorObject{
			Source: &ErrorSource{Pointer: "/data/attributes/" + e.Attribute},
			Detail: e.Message,
		})
	}
	return ErrorDocument{Errors: objects}
}
