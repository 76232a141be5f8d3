// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

const redacted = "xxxxx"

// Redacted returns a copy of cfg that is safe to log: the OAuth client
// secret is masked, and so is the password of the database DSN.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	if cfg.Adapter.OAuth.ClientSecret != "" {
		cfg.Adapter.OAuth.ClientSecret = redacted
	}
	cfg.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)
	return cfg
}

// redactDSN masks the password of a URL-form DSN. A DSN that does not parse
// is masked whole, since its secrets cannot be located.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return redacted
	}
	return u.Redacted()
}
