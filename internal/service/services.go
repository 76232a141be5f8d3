// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

type Services struct {
	AuthService         AuthService
	RegistrationService RegistrationService
	ArticleService      ArticleService
	CommentService      CommentService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, provider adapter.OAuthProvider, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hasher := utils.NewPasswordHasher(cfg.App.BcryptCost)
	sanitizer := utils.NewSanitizer()

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.AccessTokenRepository, provider, hasher, logger),
		RegistrationService: NewRegistrationService(storages.UserRepository, hasher, logger),
		ArticleService:      NewArticleService(storages.ArticleRepository, sanitizer, logger),
		CommentService:      NewCommentService(storages.ArticleRepository, storages.CommentRepository, sanitizer, logger),
		AppInfoService:      appInfoService,
	}, nil
}
