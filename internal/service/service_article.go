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

type articleService struct {
	articles  store.ArticleRepository
	validator validators.Validator
	sanitizer *utils.Sanitizer

	logger *logger.Logger
}

func NewArticleService(articles store.ArticleRepository, sanitizer *utils.Sanitizer, logger *logger.Logger) ArticleService {
	return &articleService{
		articles:  articles,
		validator: validators.NewArticleValidator(articles),
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// List returns the requested page of articles, most recent first, together
// with the total number of articles. Pages out of range are empty.
func (s *articleService) List(ctx context.Context, params pagination.Params) ([]models.Article, int64, error) {
	total, err := s.articles.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("article count failed: %w", err)
	}
	if !params.InRange(total) {
		return []models.Article{}, total, nil
	}

	articles, err := s.articles.List(ctx, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("article listing failed: %w", err)
	}
	return articles, total, nil
}

func (s *articleService) Get(ctx context.Context, articleID int64) (models.Article, error) {
	article, err := s.articles.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, store.ErrArticleNotFound) {
			return models.Article{}, ErrNotFound
		}
		return models.Article{}, fmt.Errorf("article lookup failed: %w", err)
	}
	return article, nil
}

func (s *articleService) Create(ctx context.Context, ownerID int64, article models.Article) (models.Article, error) {
	article = models.Article{
		UserID:  ownerID,
		Title:   s.sanitizer.Plain(article.Title),
		Content: s.sanitizer.Rich(article.Content),
		Slug:    s.sanitizer.Plain(article.Slug),
	}
	if err := s.validator.Validate(ctx, article); err != nil {
		return models.Article{}, err
	}

	created, err := s.articles.OwnedBy(ownerID).Create(ctx, article)
	if err != nil {
		return models.Article{}, s.mutationError(ctx, "article creation failed", err)
	}
	return created, nil
}

// Update applies the present attributes of update to an article of ownerID
// and validates the merged article before storing it.
func (s *articleService) Update(ctx context.Context, ownerID, articleID int64, update models.ArticleUpdate) (models.Article, error) {
	owned := s.articles.OwnedBy(ownerID)

	current, err := owned.Find(ctx, articleID)
	if err != nil {
		return models.Article{}, s.mutationError(ctx, "article lookup failed", err)
	}

	update = s.sanitizeUpdate(update)
	if err = s.validator.Validate(ctx, update.Apply(current)); err != nil {
		return models.Article{}, err
	}

	updated, err := owned.Update(ctx, articleID, update)
	if err != nil {
		return models.Article{}, s.mutationError(ctx, "article update failed", err)
	}
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, ownerID, articleID int64) error {
	if err := s.articles.OwnedBy(ownerID).Delete(ctx, articleID); err != nil {
		return s.mutationError(ctx, "article deletion failed", err)
	}
	return nil
}

func (s *articleService) sanitizeUpdate(update models.ArticleUpdate) models.ArticleUpdate {
	apply := func(v *string, clean func(string) string) *string {
		if v == nil {
			return nil
		}
		c := clean(*v)
		return &c
	}
	return models.ArticleUpdate{
		Title:   apply(update.Title, s.sanitizer.Plain),
		Content: apply(update.Content, s.sanitizer.Rich),
		Slug:    apply(update.Slug, s.sanitizer.Plain),
	}
}

// mutationError maps repository errors of owner scoped statements. A missing
// article is indistinguishable from a foreign one and both are reported as
// ErrAuthorization.
func (s *articleService) mutationError(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		return ErrAuthorization
	case errors.Is(err, store.ErrSlugAlreadyExists):
		return models.ValidationErrors{{Attribute: validators.FieldSlug, Message: models.MsgTaken}}
	}
	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
