// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository].
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) List(ctx context.Context, articleID int64, limit, offset int) ([]models.Comment, error) {
	rows, err := r.db.query(ctx, selectCommentsQuery(r.db.builder, articleID, limit, offset))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.List").Msg("error listing comments")
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) Count(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := r.db.queryRow(ctx, countCommentsQuery(r.db.builder, articleID), func(row *sql.Row) error {
		return row.Scan(&count)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.Count").Msg("error counting comments")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (r *commentRepository) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = r.db.now()
	}

	var created models.Comment
	err := r.db.queryRow(ctx, insertCommentQuery(r.db.builder, comment), func(row *sql.Row) error {
		var scanErr error
		created, scanErr = scanComment(row)
		return scanErr
	})
	if err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			return models.Comment{}, ErrArticleNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.Create").Msg("error creating comment")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}
