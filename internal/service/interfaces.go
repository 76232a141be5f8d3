// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService turns credentials into users and users into access tokens.
type AuthService interface {
	// Authenticate verifies a login/password pair or exchanges an OAuth code.
	// Every rejected credential yields an error matching [ErrAuthentication].
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)
	// IssueToken returns the token of user, creating it on first use.
	IssueToken(ctx context.Context, user models.User) (models.AccessToken, error)
	// Login authenticates creds and issues the token of the resolved user.
	Login(ctx context.Context, creds models.Credentials) (models.User, models.AccessToken, error)
	// Authorize resolves the owner of a bearer token, or [ErrAuthorization].
	Authorize(ctx context.Context, token string) (models.User, error)
	// Revoke deletes token. Later Authorize calls with it fail.
	Revoke(ctx context.Context, token string) error
}

// RegistrationService signs up standard users.
type RegistrationService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
}

// ArticleService serves articles. Mutations are scoped to ownerID; an
// article that is missing or owned by someone else yields [ErrAuthorization].
type ArticleService interface {
	List(ctx context.Context, params pagination.Params) ([]models.Article, int64, error)
	Get(ctx context.Context, articleID int64) (models.Article, error)
	Create(ctx context.Context, ownerID int64, article models.Article) (models.Article, error)
	Update(ctx context.Context, ownerID, articleID int64, update models.ArticleUpdate) (models.Article, error)
	Delete(ctx context.Context, ownerID, articleID int64) error
}

// CommentService serves the comments of an article. A missing article yields
// [ErrNotFound].
type CommentService interface {
	List(ctx context.Context, articleID int64, params pagination.Params) ([]models.Comment, int64, error)
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
