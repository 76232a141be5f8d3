// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}
	if cfg.Server.LoginRateLimit < 0 || cfg.Server.LoginRateBurst < 0 {
		return fmt.Errorf("%w: negative login rate limit", ErrInvalidServerConfigs)
	}
	if cfg.Server.PublicURL != "" {
		u, err := url.Parse(cfg.Server.PublicURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: public url must be absolute", ErrInvalidServerConfigs)
		}
	}

	if !IsPostgresDSN(cfg.Storage.DB.DSN) && !IsSQLiteDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported or empty dsn", ErrInvalidStorageConfigs)
	}

	oauth := cfg.Adapter.OAuth
	if (oauth.ClientID == "") != (oauth.ClientSecret == "") {
		return fmt.Errorf("%w: oauth client id and secret must be set together", ErrInvalidAdapterConfigs)
	}

	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: bcrypt cost out of range", ErrInvalidAppConfigs)
	}

	p := cfg.Pagination
	if p.DefaultPageSize < 0 || p.MaxPageSize < 0 || (p.MaxPageSize > 0 && p.DefaultPageSize > p.MaxPageSize) {
		return fmt.Errorf("%w: default page size exceeds max page size", ErrInvalidPaginationConfigs)
	}

	return nil
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsSQLiteDSN reports whether dsn addresses a SQLite database file.
func IsSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "sqlite://") || strings.HasPrefix(dsn, "file:")
}
