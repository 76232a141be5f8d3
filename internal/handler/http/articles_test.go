// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestListArticles(t *testing.T) {
	var gotParams pagination.Params
	articles := &fakeArticleService{
		listFn: func(_ context.Context, params pagination.Params) ([]models.Article, int64, error) {
			gotParams = params
			return []models.Article{{ArticleID: 2, UserID: 5, Title: "second", Content: "c", Slug: "second"}}, 3, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serve(h, http.MethodGet, "/articles?page[number]=2&page[size]=1&sort=recent", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, pagination.Params{Number: 2, Size: 1}, gotParams)

	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, map[string]any{
		"id":   "2",
		"type": "article",
		"attributes": map[string]any{
			"title":   "second",
			"content": "c",
			"slug":    "second",
		},
		"relationships": map[string]any{
			"user": map[string]any{"data": map[string]any{"id": "5", "type": "user"}},
		},
	}, data[0])

	links := body["links"].(map[string]any)
	assert.Len(t, links, 5)
	for _, key := range []string{"self", "first", "prev", "next", "last"} {
		require.Contains(t, links, key)
		assert.Contains(t, links[key], "sort=recent")
	}
	assert.Contains(t, links["last"], "page%5Bnumber%5D=3")

	assert.Equal(t, map[string]any{
		"total_count":  float64(3),
		"total_pages":  float64(3),
		"current_page": float64(2),
		"page_size":    float64(1),
	}, body["meta"])
}

func TestListArticles_EmptyIsArrayWithNullLinks(t *testing.T) {
	articles := &fakeArticleService{
		listFn: func(context.Context, pagination.Params) ([]models.Article, int64, error) {
			return nil, 0, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serve(h, http.MethodGet, "/articles", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{}, body["data"])

	links := body["links"].(map[string]any)
	assert.Contains(t, links, "prev")
	assert.Nil(t, links["prev"])
	assert.Contains(t, links, "next")
	assert.Nil(t, links["next"])
}

func TestGetArticle(t *testing.T) {
	articles := &fakeArticleService{
		getFn: func(_ context.Context, id int64) (models.Article, error) {
			if id != 9 {
				return models.Article{}, service.ErrNotFound
			}
			return models.Article{ArticleID: 9, UserID: 1, Title: "t", Content: "c", Slug: "s"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serve(h, http.MethodGet, "/articles/9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "9", data["id"])

	rec = serve(h, http.MethodGet, "/articles/10", "")
	assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")
}

func TestGetArticle_NonNumericIDIs404(t *testing.T) {
	articles := &fakeArticleService{
		getFn: func(context.Context, int64) (models.Article, error) {
			t.Fatal("service must not be called")
			return models.Article{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	for _, id := range []string{"abc", "0", "-1"} {
		rec := serve(h, http.MethodGet, "/articles/"+id, "")
		assertErrorEnvelope(t, rec, http.StatusNotFound, "/request/url/:id", "Record not Found")
	}
}

func TestCreateArticle(t *testing.T) {
	var gotOwner int64
	var got models.Article
	articles := &fakeArticleService{
		createFn: func(_ context.Context, ownerID int64, article models.Article) (models.Article, error) {
			gotOwner, got = ownerID, article
			article.ArticleID, article.UserID = 30, ownerID
			return article, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serveAuthorized(h, http.MethodPost, "/articles",
		`{"data":{"type":"article","attributes":{"title":"Hello","content":"World","slug":"hello"}}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, alice.UserID, gotOwner)
	assert.Equal(t, models.Article{Title: "Hello", Content: "World", Slug: "hello"}, got)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "30", data["id"])
	assert.Equal(t, map[string]any{"data": map[string]any{"id": "7", "type": "user"}},
		data["relationships"].(map[string]any)["user"])
}

func TestCreateArticle_RequiresToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{ArticleService: &fakeArticleService{}})

	for _, header := range []string{"", "Bearer", "Token " + testToken, "Bearer wrong", "Bearer a b"} {
		rec := serve(h, http.MethodPost, "/articles", `{}`, "Authorization", header)
		assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
		assert.Contains(t, rec.Body.String(), "You have no right to access this resource.")
	}
}

func TestCreateArticle_ValidationIs422(t *testing.T) {
	articles := &fakeArticleService{
		createFn: func(context.Context, int64, models.Article) (models.Article, error) {
			return models.Article{}, models.ValidationErrors{
				{Attribute: "title", Message: models.MsgBlank},
				{Attribute: "content", Message: models.MsgBlank},
				{Attribute: "slug", Message: models.MsgBlank},
			}
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serveAuthorized(h, http.MethodPost, "/articles", `{"data":{"attributes":{"title":"","content":"","slug":""}}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":[
		{"source":{"pointer":"/data/attributes/title"},"detail":"can't be blank"},
		{"source":{"pointer":"/data/attributes/content"},"detail":"can't be blank"},
		{"source":{"pointer":"/data/attributes/slug"},"detail":"can't be blank"}
	]}`, rec.Body.String())
}

func TestUpdateArticle_PassesOnlyPresentAttributes(t *testing.T) {
	var got models.ArticleUpdate
	var gotOwner, gotID int64
	articles := &fakeArticleService{
		updateFn: func(_ context.Context, ownerID, articleID int64, update models.ArticleUpdate) (models.Article, error) {
			gotOwner, gotID, got = ownerID, articleID, update
			return models.Article{ArticleID: articleID, UserID: ownerID, Title: *update.Title, Content: "old", Slug: "old"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serveAuthorized(h, http.MethodPatch, "/articles/4", `{"data":{"attributes":{"title":"New"}}}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, alice.UserID, gotOwner)
	assert.Equal(t, int64(4), gotID)
	assert.Equal(t, models.ArticleUpdate{Title: strPtr("New")}, got)

	attributes := decodeBody(t, rec)["data"].(map[string]any)["attributes"].(map[string]any)
	assert.Equal(t, "New", attributes["title"])
	assert.Equal(t, "old", attributes["content"])
}

func TestUpdateArticle_ForeignOrMissingIs403(t *testing.T) {
	articles := &fakeArticleService{
		updateFn: func(context.Context, int64, int64, models.ArticleUpdate) (models.Article, error) {
			return models.Article{}, service.ErrAuthorization
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serveAuthorized(h, http.MethodPatch, "/articles/4", `{"data":{"attributes":{"title":"New"}}}`)
	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")

	rec = serveAuthorized(h, http.MethodPatch, "/articles/abc", `{"data":{"attributes":{"title":"New"}}}`)
	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
}

func TestDeleteArticle(t *testing.T) {
	var gotOwner, gotID int64
	articles := &fakeArticleService{
		deleteFn: func(_ context.Context, ownerID, articleID int64) error {
			gotOwner, gotID = ownerID, articleID
			if articleID == 99 {
				return service.ErrAuthorization
			}
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	rec := serveAuthorized(h, http.MethodDelete, "/articles/8", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, alice.UserID, gotOwner)
	assert.Equal(t, int64(8), gotID)

	rec = serveAuthorized(h, http.MethodDelete, "/articles/99", "")
	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")

	rec = serve(h, http.MethodDelete, "/articles/8", "")
	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
}
