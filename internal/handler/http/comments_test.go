// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListComments(t *testing.T) {
	var gotArticle int64
	comments := &fakeCommentService{
		listFn: func(_ context.Context, articleID int64, params pagination.Params) ([]models.Comment, int64, error) {
			gotArticle = articleID
			if articleID == 404 {
				return nil, 0, service.ErrNotFound
			}
			return []models.Comment{{CommentID: 1, ArticleID: articleID, UserID: 2, Content: "nice"}}, 1, nil
		},
	}
	h := newTestHandler(t, &service.Services{CommentService: comments})

	rec := serve(h, http.MethodGet, "/articles/6/comments", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(6), gotArticle)

	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, map[string]any{
		"id":         "1",
		"type":       "comment",
		"attributes": map[string]any{"content": "nice"},
		"relationships": map[string]any{
			"article": map[string]any{"data": map[string]any{"id": "6", "type": "article"}},
			"user":    map[string]any{"data": map[string]any{"id": "2", "type": "user"}},
		},
	}, data[0])
	assert.Contains(t, body["links"].(map[string]any)["self"], "/articles/6/comments?")

	rec = serve(h, http.MethodGet, "/articles/404/comments", "")
	assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")

	rec = serve(h, http.MethodGet, "/articles/x/comments", "")
	assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")
}

func TestCreateComment(t *testing.T) {
	var got models.Comment
	comments := &fakeCommentService{
		createFn: func(_ context.Context, comment models.Comment) (models.Comment, error) {
			got = comment
			comment.CommentID = 40
			return comment, nil
		},
	}
	h := newTestHandler(t, &service.Services{CommentService: comments})

	rec := serveAuthorized(h, http.MethodPost, "/articles/6/comments", `{"data":{"attributes":{"content":"first!"}}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "/articles/6", rec.Header().Get("Location"))
	assert.Equal(t, models.Comment{ArticleID: 6, UserID: alice.UserID, Content: "first!"}, got)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "40", data["id"])
	assert.Equal(t, "comment", data["type"])
}

func TestCreateComment_LocationUsesPublicURL(t *testing.T) {
	comments := &fakeCommentService{
		createFn: func(_ context.Context, comment models.Comment) (models.Comment, error) {
			return comment, nil
		},
	}
	cfg := *config.Defaults()
	cfg.Server.PublicURL = "https://blog.example.com/"
	h, err := NewHandler(&service.Services{
		AuthService:    &fakeAuthService{authorizeFn: authorizeAlice},
		CommentService: comments,
	}, cfg, logger.Nop())
	require.NoError(t, err)

	rec := serveAuthorized(h, http.MethodPost, "/articles/6/comments", `{"data":{"attributes":{"content":"hi"}}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "https://blog.example.com/articles/6", rec.Header().Get("Location"))
}

func TestCreateComment_Errors(t *testing.T) {
	comments := &fakeCommentService{
		createFn: func(_ context.Context, comment models.Comment) (models.Comment, error) {
			if comment.ArticleID == 404 {
				return models.Comment{}, service.ErrNotFound
			}
			return models.Comment{}, models.ValidationErrors{{Attribute: "content", Message: models.MsgBlank}}
		},
	}
	h := newTestHandler(t, &service.Services{CommentService: comments})

	rec := serveAuthorized(h, http.MethodPost, "/articles/404/comments", `{"data":{"attributes":{"content":"x"}}}`)
	assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")

	rec = serveAuthorized(h, http.MethodPost, "/articles/abc/comments", `{"data":{"attributes":{"content":"x"}}}`)
	assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")

	rec = serveAuthorized(h, http.MethodPost, "/articles/6/comments", `{"data":{"attributes":{"content":""}}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":[{"source":{"pointer":"/data/attributes/content"},"detail":"can't be blank"}]}`, rec.Body.String())

	rec = serve(h, http.MethodPost, "/articles/6/comments", `{"data":{"attributes":{"content":"x"}}}`)
	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")

	rec = serveAuthorized(h, http.MethodPost, "/articles/6/comments", `not json`)
	assertErrorEnvelope(t, rec, http.StatusBadRequest, "/data", "Bad Request")
}
