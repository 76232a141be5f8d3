// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a standard user. A taken login yields
	// [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin yields [ErrNoUserWasFound] for an unknown login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// UpsertProviderUser creates or refreshes a user of an external
	// provider. A login owned by another provider yields
	// [ErrProviderMismatch].
	UpsertProviderUser(ctx context.Context, user models.User) (models.User, error)
}

// AccessTokenRepository persists the single access token of each user.
type AccessTokenRepository interface {
	// CreateIfAbsent stores token unless its user already owns one. A token
	// value bound to another user yields [ErrTokenCollision].
	CreateIfAbsent(ctx context.Context, token models.AccessToken) error
	// FindByUserID yields [ErrAccessTokenNotFound] when the user owns none.
	FindByUserID(ctx context.Context, userID int64) (models.AccessToken, error)
	// FindUserByToken resolves the owner of token, or
	// [ErrAccessTokenNotFound].
	FindUserByToken(ctx context.Context, token string) (models.User, error)
	// Delete removes token. Deleting an unknown token yields
	// [ErrAccessTokenNotFound].
	Delete(ctx context.Context, token string) error
}

// ArticleRepository reads articles and hands out owner-scoped views for
// mutations.
type ArticleRepository interface {
	List(ctx context.Context, limit, offset int) ([]models.Article, error)
	Count(ctx context.Context) (int64, error)
	// FindByID yields [ErrArticleNotFound] for an unknown id.
	FindByID(ctx context.Context, articleID int64) (models.Article, error)
	// SlugTaken reports whether an article other than exceptID uses slug.
	SlugTaken(ctx context.Context, slug string, exceptID int64) (bool, error)
	// OwnedBy returns the articles of a single user.
	OwnedBy(ownerID int64) OwnedArticleRepository
}

// OwnedArticleRepository mutates the articles of one owner. Articles of other
// users are invisible to it and reported as [ErrArticleNotFound].
type OwnedArticleRepository interface {
	// Create stores article for the owner. A taken slug yields
	// [ErrSlugAlreadyExists].
	Create(ctx context.Context, article models.Article) (models.Article, error)
	Find(ctx context.Context, articleID int64) (models.Article, error)
	Update(ctx context.Context, articleID int64, update models.ArticleUpdate) (models.Article, error)
	Delete(ctx context.Context, articleID int64) error
}

// CommentRepository persists comments of articles.
type CommentRepository interface {
	List(ctx context.Context, articleID int64, limit, offset int) ([]models.Comment, error)
	Count(ctx context.Context, articleID int64) (int64, error)
	// Create yields [ErrArticleNotFound] when the article does not exist.
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
}
