// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

type githubProvider struct {
	client *utils.HTTPClient

	name         string
	clientID     string
	clientSecret string
	tokenURL     string

	logger *logger.Logger
}

// tokenResponse is the body of the code exchange. GitHub reports a bad code
// with status 200 and the error fields set.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type githubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatar_url"`
}

// NewGitHubProvider constructs the GitHub implementation of [OAuthProvider].
// The REST API base URL and token endpoint come from cfg.OAuth; every round
// trip is bounded by cfg.RequestTimeout.
//
// Returns an error if either URL is not absolute.
func NewGitHubProvider(cfg config.Adapter, logger *logger.Logger) (OAuthProvider, error) {
	apiURL, err := normalizeBaseURL(cfg.OAuth.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth api url: %w", err)
	}
	tokenURL, err := normalizeBaseURL(cfg.OAuth.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth token url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(apiURL)

	return &githubProvider{
		client:       client,
		name:         cfg.OAuth.Provider,
		clientID:     cfg.OAuth.ClientID,
		clientSecret: cfg.OAuth.ClientSecret,
		tokenURL:     tokenURL,
		logger:       logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Name implements [OAuthProvider].
func (g *githubProvider) Name() string {
	return g.name
}

// Exchange implements [OAuthProvider]. It POSTs the code together with the
// client credentials to the token endpoint and asks for a JSON answer.
func (g *githubProvider) Exchange(ctx context.Context, code string) (string, error) {
	if g.clientID == "" || g.clientSecret == "" {
		return "", ErrNotConfigured
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"client_id":     g.clientID,
			"client_secret": g.clientSecret,
			"code":          code,
		}).
		Post(g.tokenURL)
	if err != nil {
		return "", fmt.Errorf("exchange request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var token tokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("exchange decode response: %w", err)
	}
	if token.Error != "" {
		logger.FromContext(ctx).Info().
			Str("func", "*githubProvider.Exchange").
			Str("oauth_error", token.Error).
			Msg("provider rejected authorization code")
		return "", fmt.Errorf("%w: %s", ErrCodeRejected, token.Error)
	}
	if token.AccessToken == "" {
		return "", ErrEmptyProviderToken
	}

	return token.AccessToken, nil
}

// Profile implements [OAuthProvider]. It GETs /user on behalf of
// providerToken.
func (g *githubProvider) Profile(ctx context.Context, providerToken string) (models.ProviderProfile, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(providerToken).
		SetHeader("Accept", "application/vnd.github+json").
		Get("/user")
	if err != nil {
		return models.ProviderProfile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProviderProfile{}, err
	}

	var user githubUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.ProviderProfile{}, fmt.Errorf("profile decode response: %w", err)
	}
	if user.Login == "" {
		return models.ProviderProfile{}, ErrInvalidProfile
	}

	return models.ProviderProfile{
		Login:     user.Login,
		Name:      user.Name,
		URL:       user.URL,
		AvatarURL: user.AvatarURL,
	}, nil
}
