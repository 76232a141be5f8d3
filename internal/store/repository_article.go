// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type articleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArticleRepository constructs an [ArticleRepository].
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		db:     db,
		logger: logger,
	}
}

// List returns a slice of articles, most recent first.
func (r *articleRepository) List(ctx context.Context, limit, offset int) ([]models.Article, error) {
	rows, err := r.db.query(ctx, selectArticlesQuery(r.db.builder, limit, offset))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.List").Msg("error listing articles")
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		articles = append(articles, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return articles, nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.queryRow(ctx, countArticlesQuery(r.db.builder), func(row *sql.Row) error {
		return row.Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.Count").Msg("error counting articles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *articleRepository) FindByID(ctx context.Context, articleID int64) (models.Article, error) {
	return r.findOne(ctx, sq.Eq{"article_id": articleID})
}

func (r *articleRepository) SlugTaken(ctx context.Context, slug string, exceptID int64) (bool, error) {
	var id int64
	err := r.db.queryRow(ctx, selectArticleIDBySlugQuery(r.db.builder, slug, exceptID), func(row *sql.Row) error {
		return row.Scan(&id)
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.SlugTaken").Msg("error checking slug")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *articleRepository) OwnedBy(ownerID int64) OwnedArticleRepository {
	return &ownedArticleRepository{articles: r, ownerID: ownerID}
}

func (r *articleRepository) findOne(ctx context.Context, where sq.Eq) (models.Article, error) {
	var article models.Article
	err := r.db.queryRow(ctx, selectArticleQuery(r.db.builder, where), func(row *sql.Row) error {
		var scanErr error
		article, scanErr = scanArticle(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrArticleNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*articleRepository.findOne").Msg("error finding article")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return article, nil
}

// ownedArticleRepository narrows every statement to the articles of ownerID.
type ownedArticleRepository struct {
	articles *articleRepository
	ownerID  int64
}

func (o *ownedArticleRepository) Create(ctx context.Context, article models.Article) (models.Article, error) {
	db := o.articles.db

	article.UserID = o.ownerID
	if article.CreatedAt.IsZero() {
		article.CreatedAt = o.articles.db.now()
	}
	article.UpdatedAt = article.CreatedAt

	var created models.Article
	err := db.queryRow(ctx, insertArticleQuery(db.builder, article), func(row *sql.Row) error {
		var scanErr error
		created, scanErr = scanArticle(row)
		return scanErr
	})
	if err != nil {
		if db.errorClassificator.IsUniqueViolation(err) {
			return models.Article{}, ErrSlugAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*ownedArticleRepository.Create").Msg("error creating article")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (o *ownedArticleRepository) Find(ctx context.Context, articleID int64) (models.Article, error) {
	return o.articles.findOne(ctx, sq.Eq{"article_id": articleID, "user_id": o.ownerID})
}

func (o *ownedArticleRepository) Update(ctx context.Context, articleID int64, update models.ArticleUpdate) (models.Article, error) {
	db := o.articles.db

	var updated models.Article
	q := updateOwnedArticleQuery(db.builder, o.ownerID, articleID, update, o.articles.db.now())
	err := db.queryRow(ctx, q, func(row *sql.Row) error {
		var scanErr error
		updated, scanErr = scanArticle(row)
		return scanErr
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.Article{}, ErrArticleNotFound
		case db.errorClassificator.IsUniqueViolation(err):
			return models.Article{}, ErrSlugAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*ownedArticleRepository.Update").Msg("error updating article")
		return models.Article{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (o *ownedArticleRepository) Delete(ctx context.Context, articleID int64) error {
	db := o.articles.db

	res, err := db.exec(ctx, deleteOwnedArticleQuery(db.builder, o.ownerID, articleID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ownedArticleRepository.Delete").Msg("error deleting article")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrArticleNotFound
	}

	return nil
}
