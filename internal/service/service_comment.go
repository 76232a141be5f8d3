// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentService struct {
	articles  store.ArticleRepository
	comments  store.CommentRepository
	validator validators.Validator
	sanitizer *utils.Sanitizer

	logger *logger.Logger
}

func NewCommentService(articles store.ArticleRepository, comments store.CommentRepository, sanitizer *utils.Sanitizer, logger *logger.Logger) CommentService {
	return &commentService{
		articles:  articles,
		comments:  comments,
		validator: validators.NewCommentValidator(),
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// List returns the requested page of comments of an article, most recent
// first, together with their total number.
func (s *commentService) List(ctx context.Context, articleID int64, params pagination.Params) ([]models.Comment, int64, error) {
	if err := s.ensureArticle(ctx, articleID); err != nil {
		return nil, 0, err
	}

	total, err := s.comments.Count(ctx, articleID)
	if err != nil {
		return nil, 0, fmt.Errorf("comment count failed: %w", err)
	}
	if !params.InRange(total) {
		return []models.Comment{}, total, nil
	}

	comments, err := s.comments.List(ctx, articleID, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("comment listing failed: %w", err)
	}
	return comments, total, nil
}

// Create attaches comment to its article on behalf of comment.UserID.
func (s *commentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if err := s.ensureArticle(ctx, comment.ArticleID); err != nil {
		return models.Comment{}, err
	}

	comment = models.Comment{
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Content:   s.sanitizer.Rich(comment.Content),
	}
	if err := s.validator.Validate(ctx, comment); err != nil {
		return models.Comment{}, err
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		// the article was deleted in between
		if errors.Is(err, store.ErrArticleNotFound) {
			return models.Comment{}, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("article_id", comment.ArticleID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}
	return created, nil
}

func (s *commentService) ensureArticle(ctx context.Context, articleID int64) error {
	if _, err := s.articles.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, store.ErrArticleNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("article lookup failed: %w", err)
	}
	return nil
}
