// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/jsonapi"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// loginRequest accepts an OAuth code at the top level, or the credentials
// as JSON:API attributes.
type loginRequest struct {
	Code string `json:"code"`
	Data struct {
		Attributes struct {
			Login    string `json:"login"`
			Password string `json:"password"`
			Code     string `json:"code"`
		} `json:"attributes"`
	} `json:"data"`
}

func (l loginRequest) credentials() models.Credentials {
	code := l.Code
	if code == "" {
		code = l.Data.Attributes.Code
	}
	return models.Credentials{
		Login:    l.Data.Attributes.Login,
		Password: l.Data.Attributes.Password,
		Code:     code,
	}
}

type registrationAttributes struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// login exchanges credentials for the access token of the user.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := jsonapi.DecodeInto(r.Body, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req.credentials())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Str("provider", user.Provider).Msg("user logged in")
	h.writeDocument(w, r, jsonapi.Single(jsonapi.AccessTokenResource(token)), http.StatusCreated)
}

// logout revokes the token the request was authorized with.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.AccessTokenFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrAuthorization)
		return
	}

	if err := h.services.AuthService.Revoke(r.Context(), token); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// register signs up a standard user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	attributes, err := decodeAttributes[registrationAttributes](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.RegistrationService.Register(r.Context(), models.User{
		Login:    attributes.Login,
		Password: attributes.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user registered")
	h.writeDocument(w, r, jsonapi.Single(jsonapi.UserResource(user)), http.StatusCreated)
}
