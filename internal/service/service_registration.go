// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

type registrationService struct {
	users     store.UserRepository
	validator validators.Validator
	hasher    *utils.PasswordHasher

	logger *logger.Logger
}

func NewRegistrationService(users store.UserRepository, hasher *utils.PasswordHasher, logger *logger.Logger) RegistrationService {
	return &registrationService{
		users:     users,
		validator: validators.NewRegistrationValidator(users),
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a standard user. The provider is always forced to
// "standard" and the password is stored as a bcrypt digest only.
//
// Returns [models.ValidationErrors] for a blank or taken login and a blank
// or overlong password.
func (r *registrationService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	candidate := models.User{
		Login:    strings.TrimSpace(user.Login),
		Password: user.Password,
		Provider: models.ProviderStandard,
	}
	if err := r.validator.Validate(ctx, candidate); err != nil {
		return models.User{}, err
	}

	digest, err := r.hasher.Hash(candidate.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	candidate.Password = ""
	candidate.PasswordDigest = digest

	created, err := r.users.CreateUser(ctx, candidate)
	if err != nil {
		// lost a race against a concurrent registration of the same login
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, models.ValidationErrors{{Attribute: validators.FieldLogin, Message: models.MsgTaken}}
		}
		log.Err(err).Str("login", candidate.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}
