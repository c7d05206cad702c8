package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCatalogAPIConfigs indicates invalid remote API settings
	// (for example, missing base URL or access token).
	ErrInvalidCatalogAPIConfigs = errors.New("invalid catalog api configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWebhookConfigs indicates invalid webhook listener settings
	// (for example, a listener address without a signature key).
	ErrInvalidWebhookConfigs = errors.New("invalid webhook configuration")
)
