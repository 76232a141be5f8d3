// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// issueTokenAttempts bounds the retries after a token value collided with an
// existing one.
const issueTokenAttempts = 3

// authService is the concrete implementation of AuthService.
// It verifies password and OAuth credentials and manages the single access
// token of each user.
type authService struct {
	// users looks up standard users and upserts provider users.
	users store.UserRepository

	// tokens stores the access token of each user.
	tokens store.AccessTokenRepository

	// provider exchanges OAuth codes for provider profiles.
	provider adapter.OAuthProvider

	// hasher compares bcrypt password digests.
	hasher *utils.PasswordHasher

	// generateToken produces fresh token values.
	generateToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the user and token
// repositories and the OAuth provider.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	users store.UserRepository,
	tokens store.AccessTokenRepository,
	provider adapter.OAuthProvider,
	hasher *utils.PasswordHasher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		users:         users,
		tokens:        tokens,
		provider:      provider,
		hasher:        hasher,
		generateToken: utils.GenerateAccessToken,
		logger:        logger,
	}
}

// Authenticate resolves creds to a user.
//
// A code is exchanged with the OAuth provider and the provider profile is
// upserted; otherwise the login/password pair is checked against the stored
// bcrypt digest. Every rejection is reported as ErrAuthentication, whatever
// its cause, and creates no rows. Storage and provider outages are returned
// wrapped as they are.
func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	if creds.HasCode() {
		return a.authenticateCode(ctx, creds.Code)
	}
	return a.authenticatePassword(ctx, creds.Login, creds.Password)
}

func (a *authService) authenticatePassword(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		a.hasher.Compare("", password)
		return models.User{}, ErrAuthentication
	}

	user, err := a.users.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			a.hasher.Compare("", password)
			log.Debug().Str("login", login).Msg("login attempt for unknown user")
			return models.User{}, ErrAuthentication
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	// provider users carry no digest, Compare runs the dummy comparison
	digest := user.PasswordDigest
	if !user.IsStandard() {
		digest = ""
	}
	if !a.hasher.Compare(digest, password) {
		log.Debug().Int64("id", user.UserID).Str("login", user.Login).Msg("wrong password")
		return models.User{}, ErrAuthentication
	}

	return user, nil
}

func (a *authService) authenticateCode(ctx context.Context, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	providerToken, err := a.provider.Exchange(ctx, code)
	if err != nil {
		return models.User{}, a.providerError(ctx, "oauth code exchange failed", err)
	}

	profile, err := a.provider.Profile(ctx, providerToken)
	if err != nil {
		return models.User{}, a.providerError(ctx, "oauth profile fetch failed", err)
	}

	user, err := a.users.UpsertProviderUser(ctx, models.User{
		Login:     profile.Login,
		Provider:  a.provider.Name(),
		Name:      profile.Name,
		URL:       profile.URL,
		AvatarURL: profile.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrProviderMismatch) {
			log.Info().Str("login", profile.Login).Str("provider", a.provider.Name()).Msg("login is owned by another provider")
			return models.User{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
		}
		log.Err(err).Str("login", profile.Login).Msg("provider user upsert failed")
		return models.User{}, fmt.Errorf("provider user upsert failed: %w", err)
	}

	return user, nil
}

func (a *authService) providerError(ctx context.Context, msg string, err error) error {
	if adapter.IsRejection(err) {
		logger.FromContext(ctx).Info().Err(err).Msg(msg)
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	logger.FromContext(ctx).Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// IssueToken returns the token of user. When the user has none yet, a random
// token is inserted unless a concurrent request inserted one first, and the
// stored token is read back, so every caller ends up with the same value. A
// token value that collides with another user's token is regenerated, up to
// issueTokenAttempts times.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	token, err := a.tokens.FindByUserID(ctx, user.UserID)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, store.ErrAccessTokenNotFound) {
		log.Err(err).Int64("user_id", user.UserID).Msg("access token lookup failed")
		return models.AccessToken{}, fmt.Errorf("access token lookup failed: %w", err)
	}

	for attempt := 1; attempt <= issueTokenAttempts; attempt++ {
		value, err := a.generateToken()
		if err != nil {
			return models.AccessToken{}, fmt.Errorf("access token generation failed: %w", err)
		}

		err = a.tokens.CreateIfAbsent(ctx, models.AccessToken{Token: value, UserID: user.UserID})
		if errors.Is(err, store.ErrTokenCollision) {
			log.Warn().Int("attempt", attempt).Int64("user_id", user.UserID).Msg("access token collision")
			continue
		}
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("access token creation failed")
			return models.AccessToken{}, fmt.Errorf("access token creation failed: %w", err)
		}

		token, err = a.tokens.FindByUserID(ctx, user.UserID)
		if err != nil {
			return models.AccessToken{}, fmt.Errorf("access token lookup failed: %w", err)
		}
		return token, nil
	}

	return models.AccessToken{}, ErrTokenIssuance
}

// Login authenticates creds and issues the access token of the resolved
// user.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, models.AccessToken, error) {
	user, err := a.Authenticate(ctx, creds)
	if err != nil {
		return models.User{}, models.AccessToken{}, err
	}

	token, err := a.IssueToken(ctx, user)
	if err != nil {
		return models.User{}, models.AccessToken{}, err
	}

	return user, token, nil
}

// Authorize resolves the owner of token. An empty or unknown token yields
// ErrAuthorization.
func (a *authService) Authorize(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrAuthorization
	}

	user, err := a.tokens.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrAccessTokenNotFound) {
			return models.User{}, ErrAuthorization
		}
		logger.FromContext(ctx).Err(err).Msg("access token resolution failed")
		return models.User{}, fmt.Errorf("access token resolution failed: %w", err)
	}

	return user, nil
}

// Revoke deletes token. A token that is already gone yields
// ErrAuthorization.
func (a *authService) Revoke(ctx context.Context, token string) error {
	err := a.tokens.Delete(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrAccessTokenNotFound) {
			return ErrAuthorization
		}
		logger.FromContext(ctx).Err(err).Msg("access token deletion failed")
		return fmt.Errorf("access token deletion failed: %w", err)
	}
	return nil
}
