// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-api/models"
)

var articleFields = []string{FieldTitle, FieldContent, FieldSlug}

// SlugChecker reports whether an article other than exceptID already uses
// slug. store.ArticleRepository satisfies it.
type SlugChecker interface {
	SlugTaken(ctx context.Context, slug string, exceptID int64) (bool, error)
}

// ArticleValidator checks presence of title, content and slug, and slug
// uniqueness.
type ArticleValidator struct {
	slugs SlugChecker
}

func NewArticleValidator(slugs SlugChecker) Validator {
	return &ArticleValidator{slugs: slugs}
}

// Validate implements [Validator]. Failed rules are returned as
// [models.ValidationErrors] in attribute declaration order.
func (v *ArticleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Article:
		return v.validateArticle(ctx, value, fields...)
	case *models.Article:
		return v.validateArticle(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ArticleValidator) validateArticle(ctx context.Context, article models.Article, fields ...string) error {
	s, err := newScope(articleFields, fields)
	if err != nil {
		return err
	}

	var errs models.ValidationErrors
	if s.has(FieldTitle) && isBlank(article.Title) {
		errs.Add(FieldTitle, models.MsgBlank)
	}
	if s.has(FieldContent) && isBlank(article.Content) {
		errs.Add(FieldContent, models.MsgBlank)
	}
	if s.has(FieldSlug) {
		switch {
		case isBlank(article.Slug):
			errs.Add(FieldSlug, models.MsgBlank)
		default:
			taken, err := v.slugs.SlugTaken(ctx, article.Slug, article.ArticleID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUniquenessCheck, err)
			}
			if taken {
				errs.Add(FieldSlug, models.MsgTaken)
			}
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
