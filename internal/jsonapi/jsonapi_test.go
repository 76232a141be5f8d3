// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonapi

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/models"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestArticleResource(t *testing.T) {
	doc := Single(ArticleResource(models.Article{
		ArticleID: 7, UserID: 3, Title: "Hello", Content: "World", Slug: "hello",
	}))

	assert.JSONEq(t, `{"data":{
		"id":"7","type":"article",
		"attributes":{"title":"Hello","content":"World","slug":"hello"},
		"relationships":{"user":{"data":{"id":"3","type":"user"}}}
	}}`, marshal(t, doc))
}

func TestCommentResource(t *testing.T) {
	res := CommentResource(models.Comment{CommentID: 1, ArticleID: 7, UserID: 3, Content: "nice"})

	assert.JSONEq(t, `{
		"id":"1","type":"comment",
		"attributes":{"content":"nice"},
		"relationships":{
			"article":{"data":{"id":"7","type":"article"}},
			"user":{"data":{"id":"3","type":"user"}}
		}
	}`, marshal(t, res))
}

func TestUserResource_HidesPassword(t *testing.T) {
	res := UserResource(models.User{
		UserID: 3, Login: "alice", PasswordDigest: "$2a$secret", Password: "plain",
		Provider: models.ProviderStandard,
	})

	out := marshal(t, res)
	assert.JSONEq(t, `{"id":"3","type":"user","attributes":{
		"login":"alice","name":"","url":"","avatar_url":"","provider":"standard"
	}}`, out)
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "plain")
}

func TestAccessTokenResource(t *testing.T) {
	res := AccessTokenResource(models.AccessToken{AccessTokenID: 9, Token: "abc", UserID: 3})
	assert.JSONEq(t, `{"id":"9","type":"access_token","attributes":{"token":"abc"}}`, marshal(t, res))
}

func TestCollection_EmptyDataIsArray(t *testing.T) {
	p, err := pagination.New(20, 100, "")
	require.NoError(t, err)
	page := p.Paginate(0, pagination.Params{Number: 1, Size: 20}, mustParse(t, "/articles"))

	out := marshal(t, Articles(nil, page))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []any{}, decoded["data"])
	assert.Contains(t, decoded, "links")
	assert.Contains(t, decoded, "meta")
}

func TestValidationErrors(t *testing.T) {
	var v models.ValidationErrors
	v.Add("title", models.MsgBlank)
	v.Add("slug", models.MsgTaken)

	assert.JSONEq(t, `{"errors":[
		{"source":{"pointer":"/data/attributes/title"},"detail":"can't be blank"},
		{"source":{"pointer":"/data/attributes/slug"},"detail":"has already been taken"}
	]}`, marshal(t, ValidationErrors(v)))
}

func TestNewErrorDocument_WithoutPointer(t *testing.T) {
	doc := NewErrorDocument("429", "", "Too Many Requests", "slow down")
	assert.JSONEq(t, `{"errors":[{"status":"429","title":"Too Many Requests","detail":"slow down"}]}`, marshal(t, doc))
}

type testAttributes struct {
	Title *string `json:"title"`
	Body  string  `json:"body"`
}

func TestDecode(t *testing.T) {
	attrs, err := Decode[testAttributes](strings.NewReader(`{"data":{"type":"article","attributes":{"title":"T"}}}`))
	require.NoError(t, err)
	require.NotNil(t, attrs.Title)
	assert.Equal(t, "T", *attrs.Title)
	assert.Empty(t, attrs.Body)
}

func TestDecode_EmptyBody(t *testing.T) {
	attrs, err := Decode[testAttributes](strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, attrs.Title)
}

func TestDecode_Malformed(t *testing.T) {
	for _, body := range []string{`{"data":`, `[]`, `{"data":"x"}`} {
		_, err := Decode[testAttributes](strings.NewReader(body))
		assert.ErrorIs(t, err, ErrInvalidDocument, body)
	}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
