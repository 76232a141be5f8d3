// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the blog
// API. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as log level, version and
	// password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limiting settings of
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations (OAuth provider).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Pagination holds page size limits for collection endpoints.
	Pagination Pagination `envPrefix:"PAGINATION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimal zerolog level that is emitted
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// BcryptCost is the cost factor of password digests.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PublicURL is the externally visible base URL. When set, pagination
	// links are absolute and prefixed with it.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// LoginRateLimit is the number of requests per minute a single client IP
	// may send to the login and registration endpoints.
	// Env: SERVER_LOGIN_RATE_LIMIT
	LoginRateLimit int `env:"LOGIN_RATE_LIMIT"`

	// LoginRateBurst is the burst size of the login rate limiter.
	// Env: SERVER_LOGIN_RATE_BURST
	LoginRateBurst int `env:"LOGIN_RATE_BURST"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// "postgres://" and "postgresql://" DSNs are served by pgx,
	// "sqlite://<path>" and "file:<path>" DSNs by go-sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// AutoMigrate applies the embedded migrations on startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	// RequestTimeout bounds every outbound HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OAuth holds the OAuth provider client settings.
	OAuth OAuth `envPrefix:"OAUTH_"`
}

// OAuth holds the client settings of the external OAuth provider used by
// the code exchange login.
type OAuth struct {
	// Provider is the provider name stored on users created by it.
	// Env: ADAPTER_OAUTH_PROVIDER
	Provider string `env:"PROVIDER"`

	// ClientID is the OAuth application client id.
	// Env: ADAPTER_OAUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth application client secret.
	// Env: ADAPTER_OAUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// TokenURL is the endpoint exchanging an authorization code for a
	// provider access token.
	// Env: ADAPTER_OAUTH_TOKEN_URL
	TokenURL string `env:"TOKEN_URL"`

	// APIURL is the base URL of the provider REST API serving the profile.
	// Env: ADAPTER_OAUTH_API_URL
	APIURL string `env:"API_URL"`
}

// Pagination holds page size limits of collection endpoints.
type Pagination struct {
	// DefaultPageSize is used when page[size] is absent or invalid.
	// Env: PAGINATION_DEFAULT_PAGE_SIZE
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE"`

	// MaxPageSize caps page[size].
	// Env: PAGINATION_MAX_PAGE_SIZE
	MaxPageSize int `env:"MAX_PAGE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. A field is taken from the
// first source that sets it, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
