// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel   string `json:"log_level"`
		Version    string `json:"version"`
		BcryptCost int    `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN         string `json:"dsn"`
			AutoMigrate bool   `json:"auto_migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PublicURL      string   `json:"public_url"`
		LoginRateLimit int      `json:"login_rate_limit"`
		LoginRateBurst int      `json:"login_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
		OAuth          struct {
			Provider     string `json:"provider"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			TokenURL     string `json:"token_url"`
			APIURL       string `json:"api_url"`
		} `json:"oauth,omitempty"`
	} `json:"adapter,omitempty"`

	Pagination struct {
		DefaultPageSize int `json:"default_page_size"`
		MaxPageSize     int `json:"max_page_size"`
	} `json:"pagination,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:   jsonCfg.App.LogLevel,
			Version:    jsonCfg.App.Version,
			BcryptCost: jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN:         jsonCfg.Storage.DB.DSN,
				AutoMigrate: jsonCfg.Storage.DB.AutoMigrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			PublicURL:      jsonCfg.Server.PublicURL,
			LoginRateLimit: jsonCfg.Server.LoginRateLimit,
			LoginRateBurst: jsonCfg.Server.LoginRateBurst,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			OAuth: OAuth{
				Provider:     jsonCfg.Adapter.OAuth.Provider,
				ClientID:     jsonCfg.Adapter.OAuth.ClientID,
				ClientSecret: jsonCfg.Adapter.OAuth.ClientSecret,
				TokenURL:     jsonCfg.Adapter.OAuth.TokenURL,
				APIURL:       jsonCfg.Adapter.OAuth.APIURL,
			},
		},
		Pagination: Pagination{
			DefaultPageSize: jsonCfg.Pagination.DefaultPageSize,
			MaxPageSize:     jsonCfg.Pagination.MaxPageSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
