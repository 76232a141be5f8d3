// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

type accessTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccessTokenRepository constructs an [AccessTokenRepository].
func NewAccessTokenRepository(db *DB, logger *logger.Logger) AccessTokenRepository {
	logger.Debug().Msg("creating access token repository")
	return &accessTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accessTokenRepository) CreateIfAbsent(ctx context.Context, token models.AccessToken) error {
	log := logger.FromContext(ctx)
	if token.CreatedAt.IsZero() {
		token.CreatedAt = r.db.now()
	}

	_, err := r.db.exec(ctx, insertAccessTokenQuery(r.db.builder, token))
	if err != nil {
		// user_id conflicts are absorbed by the statement itself
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrTokenCollision
		}
		log.Err(err).Str("func", "*accessTokenRepository.CreateIfAbsent").Msg("error inserting access token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accessTokenRepository) FindByUserID(ctx context.Context, userID int64) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	var token models.AccessToken
	err := r.db.queryRow(ctx, selectAccessTokenByUserIDQuery(r.db.builder, userID), func(row *sql.Row) error {
		return row.Scan(&token.AccessTokenID, &token.Token, &token.UserID, &token.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccessToken{}, ErrAccessTokenNotFound
		}
		log.Err(err).Str("func", "*accessTokenRepository.FindByUserID").Msg("error finding access token")
		return models.AccessToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

func (r *accessTokenRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.queryRow(ctx, selectUserByTokenQuery(r.db.builder, token), func(row *sql.Row) error {
		var scanErr error
		user, scanErr = scanUser(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrAccessTokenNotFound
		}
		log.Err(err).Str("func", "*accessTokenRepository.FindUserByToken").Msg("error resolving access token")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *accessTokenRepository) Delete(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.exec(ctx, deleteAccessTokenQuery(r.db.builder, token))
	if err != nil {
		log.Err(err).Str("func", "*accessTokenRepository.Delete").Msg("error deleting access token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccessTokenNotFound
	}

	return nil
}
