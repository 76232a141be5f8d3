// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/jsonapi"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
)

type articleAttributes struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	params := h.paginator.Params(r.URL.Query())

	articles, total, err := h.services.ArticleService.List(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page := h.paginator.Paginate(total, params, r.URL)
	h.writeDocument(w, r, jsonapi.Articles(articles, page), http.StatusOK)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathID(r)
	if !ok {
		h.writeError(w, r, service.ErrNotFound)
		return
	}

	article, err := h.services.ArticleService.Get(r.Context(), articleID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeDocument(w, r, jsonapi.Single(jsonapi.ArticleResource(article)), http.StatusOK)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	attributes, err := decodeAttributes[articleAttributes](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.Create(r.Context(), user.UserID, models.Article{
		Title:   attributes.Title,
		Content: attributes.Content,
		Slug:    attributes.Slug,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeDocument(w, r, jsonapi.Single(jsonapi.ArticleResource(article)), http.StatusCreated)
}

// updateArticle applies the attributes present in the body. An id that
// names no article of the current user is answered like a foreign one.
func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	articleID, ok := pathID(r)
	if !ok {
		h.writeError(w, r, service.ErrAuthorization)
		return
	}

	update, err := decodeAttributes[models.ArticleUpdate](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	article, err := h.services.ArticleService.Update(r.Context(), user.UserID, articleID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeDocument(w, r, jsonapi.Single(jsonapi.ArticleResource(article)), http.StatusOK)
}

func (h *Handler) deleteArticle(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	articleID, ok := pathID(r)
	if !ok {
		h.writeError(w, r, service.ErrAuthorization)
		return
	}

	if err = h.services.ArticleService.Delete(r.Context(), user.UserID, articleID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
