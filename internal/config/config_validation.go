package config

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.CatalogAPI.BaseURL == "" || cfg.CatalogAPI.AccessToken == "" {
		return ErrInvalidCatalogAPIConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// A listener without a signature key would accept unauthenticated
	// notifications; running without a listener at all is allowed.
	if cfg.Webhook.HTTPAddress != "" && cfg.Webhook.SignatureKey == "" {
		return ErrInvalidWebhookConfigs
	}

	return nil
}
