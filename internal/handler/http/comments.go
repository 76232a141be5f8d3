// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/jsonapi"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentAttributes struct {
	Content string `json:"content"`
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathID(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound)
		return
	}

	params := h.paginator.Params(r.URL.Query())

	comments, total, err := h.services.CommentService.List(r.Context(), articleID, params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page := h.paginator.Paginate(total, params, r.URL)
	h.writeDocument(w, r, jsonapi.Comments(comments, page), http.StatusOK)
}

// createComment attaches the current user and the article of the path to a
// new comment. The Location header points at the commented article.
func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	articleID, ok := pathID(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound)
		return
	}

	attributes, err := decodeAttributes[commentAttributes](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	comment, err := h.services.CommentService.Create(r.Context(), models.Comment{
		ArticleID: articleID,
		UserID:    user.UserID,
		Content:   attributes.Content,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", h.articleLocation(comment.ArticleID))
	h.writeDocument(w, r, jsonapi.Single(jsonapi.CommentResource(comment)), http.StatusCreated)
}

func (h *Handler) articleLocation(articleID int64) string {
	return strings.TrimRight(h.cfg.PublicURL, "/") + "/articles/" + strconv.FormatInt(articleID, 10)
}
