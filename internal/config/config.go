// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package config

import (
	"time"
)

// Config is the top-level configuration container for the catalog sync
// daemon. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// CatalogAPI holds connection settings for the remote catalog backend.
	CatalogAPI CatalogAPI `envPrefix:"CATALOG_API_"`

	// Storage holds configuration for local persistence: the SQLite replica
	// and the on-disk image cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Webhook holds settings for the inbound change-notification endpoint.
	Webhook Webhook `envPrefix:"WEBHOOK_"`

	// Sync holds tuning knobs for the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// CatalogAPI holds the remote catalog API connection settings.
type CatalogAPI struct {
	// BaseURL is the root URL of the remote catalog API
	// (e.g. "https://connect.example.com").
	// Env: CATALOG_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AccessToken is the bearer token sent on every request. Treated as an
	// opaque credential; a 401/403 response invalidates it.
	// Env: CATALOG_API_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Version is the API version header value pinned by this engine.
	// Env: CATALOG_API_VERSION
	Version string `env:"VERSION"`

	// Timeout bounds every single network call (e.g. "15s").
	// Env: CATALOG_API_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RetryCount is the number of extra attempts for transient failures
	// (network errors, 429, 5xx). Auth failures are never retried.
	// Env: CATALOG_API_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the configuration for local persistence backends.
type Storage struct {
	// DB holds the SQLite replica settings.
	DB DB `envPrefix:"DB_"`

	// Images holds the image file cache settings.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings for the local SQLite replica.
type DB struct {
	// DSN is the SQLite file path used to open the local replica
	// (e.g. "/var/lib/catalogsync/catalog.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Images holds file-system settings for the cached catalog media.
type Images struct {
	// CacheDir is the directory where downloaded catalog images are cached,
	// keyed by their remote object id.
	// Env: STORAGE_IMAGES_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`
}

// Webhook holds settings for the inbound change-notification listener.
type Webhook struct {
	// HTTPAddress is the TCP address the webhook server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8090").
	// Env: WEBHOOK_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SignatureKey is the HMAC-SHA256 key used to verify inbound
	// notification signatures. Must be kept confidential.
	// Env: WEBHOOK_SIGNATURE_KEY
	SignatureKey string `env:"SIGNATURE_KEY"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: WEBHOOK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the tuning knobs of the synchronization engine.
type Sync struct {
	// CatchupInterval is how often the background catch-up job runs an
	// incremental sync (e.g. "5m").
	// Env: SYNC_CATCHUP_INTERVAL
	CatchupInterval time.Duration `env:"CATCHUP_INTERVAL"`

	// ProgressEvery controls how many processed objects pass between two
	// progress events, so observers are not flooded on large catalogs.
	// Env: SYNC_PROGRESS_EVERY
	ProgressEvery int `env:"PROGRESS_EVERY"`

	// DedupWindow is the time span during which a locally-originated write
	// suppresses an echoing change notification for the same object.
	// Env: SYNC_DEDUP_WINDOW
	DedupWindow time.Duration `env:"DEDUP_WINDOW"`

	// ConflictRetryLimit bounds the fetch-merge-retry cycles of the
	// versioned update builder before a VERSION_MISMATCH is surfaced to the
	// caller as a conflict.
	// Env: SYNC_CONFLICT_RETRY_LIMIT
	ConflictRetryLimit int `env:"CONFLICT_RETRY_LIMIT"`

	// SuspicionMinLocal is the minimum number of locally stored objects
	// above which a sync returning zero objects is treated as a masked
	// failure instead of an idle catalog.
	// Env: SYNC_SUSPICION_MIN_LOCAL
	SuspicionMinLocal int64 `env:"SUSPICION_MIN_LOCAL"`

	// SuspicionMaxGap is the maximum tolerated gap since the last successful
	// sync for an empty incremental result to still count as "nothing
	// changed" (e.g. "168h").
	// Env: SYNC_SUSPICION_MAX_GAP
	SuspicionMaxGap time.Duration `env:"SUSPICION_MAX_GAP"`

	// ValidationSkipLimit is the maximum number of malformed remote objects
	// a single sync run may skip before it is aborted as unreliable.
	// Env: SYNC_VALIDATION_SKIP_LIMIT
	ValidationSkipLimit int64 `env:"VALIDATION_SKIP_LIMIT"`
}

// GetConfig loads, merges, and validates the daemon configuration from all
// available sources in the following priority order (first non-zero value
// wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing tuning knobs fall back to the defaults applied by
// [Config.applyDefaults]. Returns a fully populated *Config or an error if
// any source fails to load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills tuning knobs that no configuration source provided.
func (cfg *Config) applyDefaults() {
	if cfg.CatalogAPI.Timeout <= 0 {
		cfg.CatalogAPI.Timeout = 15 * time.Second
	}
	if cfg.CatalogAPI.RetryCount <= 0 {
		cfg.CatalogAPI.RetryCount = 3
	}
	if cfg.Webhook.RequestTimeout <= 0 {
		cfg.Webhook.RequestTimeout = 30 * time.Second
	}
	if cfg.Sync.CatchupInterval <= 0 {
		cfg.Sync.CatchupInterval = 5 * time.Minute
	}
	if cfg.Sync.ProgressEvery <= 0 {
		cfg.Sync.ProgressEvery = 50
	}
	if cfg.Sync.DedupWindow <= 0 {
		cfg.Sync.DedupWindow = 30 * time.Second
	}
	if cfg.Sync.ConflictRetryLimit <= 0 {
		cfg.Sync.ConflictRetryLimit = 3
	}
	if cfg.Sync.SuspicionMinLocal <= 0 {
		cfg.Sync.SuspicionMinLocal = 1
	}
	if cfg.Sync.SuspicionMaxGap <= 0 {
		cfg.Sync.SuspicionMaxGap = 7 * 24 * time.Hour
	}
	if cfg.Sync.ValidationSkipLimit <= 0 {
		cfg.Sync.ValidationSkipLimit = 25
	}
}
