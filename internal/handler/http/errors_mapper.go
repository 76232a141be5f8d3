// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/jsonapi"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrAuthentication: http.StatusUnauthorized,
	service.ErrAuthorization:  http.StatusForbidden,
	service.ErrNotFound:       http.StatusNotFound,
	errInvalidBody:            http.StatusBadRequest,
	errRateLimited:            http.StatusTooManyRequests,
}

// errorDocuments holds the fixed envelope of every status writeError emits,
// except 422 which is built from the failed rules.
var errorDocuments = map[int]jsonapi.ErrorDocument{
	http.StatusBadRequest: jsonapi.NewErrorDocument("400", "/data",
		"Bad Request",
		"Request body is not a valid JSON:API document"),
	http.StatusUnauthorized: jsonapi.NewErrorDocument("401", "/code",
		"Authentication code is invalid",
		"You must provide a valid code in order to exchange it for token"),
	http.StatusForbidden: jsonapi.NewErrorDocument("403", "/headers/authorization",
		"Not authorized",
		"You have no right to access this resource."),
	http.StatusNotFound: jsonapi.NewErrorDocument("404", "/request/url/:id",
		"Record not Found",
		"We could not find the object you were looking for."),
	http.StatusTooManyRequests: jsonapi.NewErrorDocument("429", "",
		"Too Many Requests",
		"Request rate limit exceeded, try again later"),
	http.StatusInternalServerError: jsonapi.NewErrorDocument("500", "",
		"Something went wrong",
		"We encountered unexpected error, but our developers had been already notified about it"),
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates err into its JSON:API error document. Unexpected
// errors are logged with the request trace id and answered with the generic
// 500 envelope; their details never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Msg("validation failed")
		h.writeDocument(w, r, jsonapi.ValidationErrors(validationErrs), http.StatusUnprocessableEntity)
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusUnauthorized:
		h.metrics.RecordAuthFailure("authentication")
		log.Info().Err(err).Msg("authentication failed")
	case http.StatusForbidden:
		h.metrics.RecordAuthFailure("authorization")
		log.Info().Err(err).Msg("not authorized")
	case http.StatusInternalServerError:
		log.Error().Err(err).Msg("unexpected error occurred")
	default:
		log.Debug().Err(err).Int("status", status).Send()
	}

	h.writeDocument(w, r, errorDocuments[status], status)
}

// writeDocument writes doc with the JSON:API media type.
func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, doc any, status int) {
	if _, err := utils.WriteJSON(w, doc, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
