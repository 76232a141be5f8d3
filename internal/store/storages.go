// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-blog-api/internal/logger"

// Storages bundles every repository built on one database handle.
type Storages struct {
	UserRepository        UserRepository
	AccessTokenRepository AccessTokenRepository
	ArticleRepository     ArticleRepository
	CommentRepository     CommentRepository
}

// NewStorages builds all repositories on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		AccessTokenRepository: NewAccessTokenRepository(db, logger),
		ArticleRepository:     NewArticleRepository(db, logger),
		CommentRepository:     NewCommentRepository(db, logger),
	}
}
