// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the sync engine's configuration by merging values
// from command-line flags, environment variables (optionally preloaded from a
// .env file), and an optional JSON file. Later sources never overwrite values
// already set by earlier ones; merging is done with mergo.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by the builder in config_builder.go and validated before use.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds the endpoint settings for the remote authority.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds orchestrator behaviour settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from flags and environment.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds network settings for reaching the remote authority.
type Remote struct {
	// BaseURL is the root endpoint of the row-oriented CRUD API
	// (e.g. "https://sync.example.com").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the bearer token attached to every authenticated request.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "packsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds orchestrator behaviour settings.
type Sync struct {
	// Interval is the auto-sync timer period (e.g. "30s", "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// UserID is the identity stamped on locally produced changes.
	// Env: SYNC_USER_ID
	UserID string `env:"USER_ID"`

	// Strategy is the automatic merge strategy applied when resolving
	// conflicts by policy: prefer-server, prefer-local or manual.
	// Env: SYNC_STRATEGY
	Strategy string `env:"STRATEGY"`
}

// validate checks that the merged configuration satisfies the invariants the
// engine needs at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Remote.BaseURL == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.UserID == "" {
		return ErrInvalidSyncConfigs
	}

	return nil
}
