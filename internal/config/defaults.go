// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults returns the configuration applied to every field no other source
// has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:   "debug",
			Version:    "0.1.0",
			BcryptCost: bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			LoginRateLimit: 60,
			LoginRateBurst: 10,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
			OAuth: OAuth{
				Provider: "github",
				TokenURL: "https://github.com/login/oauth/access_token",
				APIURL:   "https://api.github.com",
			},
		},
		Pagination: Pagination{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}
