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

// userRepository is the SQL implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.db.now()
	}

	var created models.User
	err := r.db.queryRow(ctx, insertUserQuery(r.db.builder, user), func(row *sql.Row) error {
		var scanErr error
		created, scanErr = scanUser(row)
		return scanErr
	})
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByLogin retrieves the user with the given login.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.queryRow(ctx, selectUserByLoginQuery(r.db.builder, login), func(row *sql.Row) error {
		var scanErr error
		found, scanErr = scanUser(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpsertProviderUser inserts a user of an external provider or refreshes
// the profile of the existing one. The conflict update is guarded by the
// provider, so an empty result means the login belongs to someone else.
func (r *userRepository) UpsertProviderUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.db.now()
	}

	var upserted models.User
	err := r.db.queryRow(ctx, upsertProviderUserQuery(r.db.builder, user), func(row *sql.Row) error {
		var scanErr error
		upserted, scanErr = scanUser(row)
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("login", user.Login).Str("provider", user.Provider).Msg("login is owned by another provider")
			return models.User{}, ErrProviderMismatch
		}
		log.Err(err).Str("func", "*userRepository.UpsertProviderUser").Msg("error upserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return upserted, nil
}
