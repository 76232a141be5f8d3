// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/jsonapi"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

// decodeAttributes reads the data.attributes member of the request body.
func decodeAttributes[T any](r *http.Request) (T, error) {
	attributes, err := jsonapi.Decode[T](r.Body)
	if err != nil {
		return attributes, fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return attributes, nil
}

// pathID parses the {id} route parameter. Only positive integers are ids.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// currentUser returns the user the auth middleware resolved.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, errNoCurrentUser
	}
	return user, nil
}
