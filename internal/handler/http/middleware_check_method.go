// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/service"
)

// notFound answers unknown routes with the 404 envelope. It is also the
// router's MethodNotAllowed handler: a known path requested with a method it
// does not serve is reported as missing, not as 405, so the existence of the
// route is not leaked.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, service.ErrNotFound)
}
