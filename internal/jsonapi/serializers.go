// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonapi

import (
	"strconv"

	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/models"
)

type articleAttributes struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

type commentAttributes struct {
	Content string `json:"content"`
}

type userAttributes struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatar_url"`
	Provider  string `json:"provider"`
}

type accessTokenAttributes struct {
	Token string `json:"token"`
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func relation(resourceType string, resourceID int64) Relationship {
	return Relationship{Data: ResourceIdentifier{ID: id(resourceID), Type: resourceType}}
}

// ArticleResource serializes an article with its owner relationship.
func ArticleResource(a models.Article) Resource {
	return Resource{
		ID:   id(a.ArticleID),
		Type: TypeArticle,
		Attributes: articleAttributes{
			Title:   a.Title,
			Content: a.Content,
			Slug:    a.Slug,
		},
		Relationships: map[string]Relationship{
			"user": relation(TypeUser, a.UserID),
		},
	}
}

// Articles serializes a page of articles.
func Articles(articles []models.Article, page pagination.Page) Document {
	resources := make([]Resource, 0, len(articles))
	for _, a := range articles {
		resources = append(resources, ArticleResource(a))
	}
	return Collection(resources, page)
}

// CommentResource serializes a comment with its article and author
// relationships.
func CommentResource(c models.Comment) Resource {
	return Resource{
		ID:         id(c.CommentID),
		Type:       TypeComment,
		Attributes: commentAttributes{Content: c.Content},
		Relationships: map[string]Relationship{
			"article": relation(TypeArticle, c.ArticleID),
			"user":    relation(TypeUser, c.UserID),
		},
	}
}

// Comments serializes a page of comments.
func Comments(comments []models.Comment, page pagination.Page) Document {
	resources := make([]Resource, 0, len(comments))
	for _, c := range comments {
		resources = append(resources, CommentResource(c))
	}
	return Collection(resources, page)
}

// UserResource serializes the public profile of a user. The password digest
// is never exposed.
func UserResource(u models.User) Resource {
	return Resource{
		ID:   id(u.UserID),
		Type: TypeUser,
		Attributes: userAttributes{
			Login:     u.Login,
			Name:      u.Name,
			URL:       u.URL,
			AvatarURL: u.AvatarURL,
			Provider:  u.Provider,
		},
	}
}

// AccessTokenResource serializes an issued access token.
func AccessTokenResource(t models.AccessToken) Resource {
	return Resource{
		ID:         id(t.AccessTokenID),
		Type:       TypeAccessToken,
		Attributes: accessTokenAttributes{Token: t.Token},
	}
}
