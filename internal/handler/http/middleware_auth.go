// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

// auth is the authorization gate of protected routes.
//
// It expects an "Authorization: Bearer <token>" header and resolves the token
// with [service.AuthService.Authorize] on every request. The owner of the
// token and the token itself are stored in the request context, see
// [utils.WithCurrentUser]. A missing or malformed header and an unknown token
// are all answered with the 403 envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrAuthorization, err))
			return
		}

		user, err := h.services.AuthService.Authorize(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user, token)))
	})
}
