package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a webhook listener address in format [host]:[port]
//	-d local SQLite database path
//	-images-dir image cache directory
//	-api-base-url remote catalog API base URL
//	-api-token remote catalog API access token
//	-api-version remote catalog API version header
//	-api-timeout remote request timeout (e.g., "15s")
//	-signature-key webhook HMAC signature key
//	-catchup-interval background catch-up sync interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var webhookAddress string
	var databaseDSN string
	var imagesDir string
	var apiBaseURL string
	var apiToken string
	var apiVersion string
	var apiTimeout time.Duration
	var signatureKey string
	var catchupInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&webhookAddress, "a", "", "Webhook listener address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&imagesDir, "images-dir", "", "Image cache directory")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Remote catalog API base URL")
	flag.StringVar(&apiToken, "api-token", "", "Remote catalog API access token")
	flag.StringVar(&apiVersion, "api-version", "", "Remote catalog API version header")
	flag.DurationVar(&apiTimeout, "api-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&signatureKey, "signature-key", "", "Webhook HMAC signature key")
	flag.DurationVar(&catchupInterval, "catchup-interval", 0, "Catch-up sync interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		CatalogAPI: CatalogAPI{
			BaseURL:     apiBaseURL,
			AccessToken: apiToken,
			Version:     apiVersion,
			Timeout:     apiTimeout,
		},
		Storage: Storage{
			DB:     DB{DSN: databaseDSN},
			Images: Images{CacheDir: imagesDir},
		},
		Webhook: Webhook{
			HTTPAddress:  webhookAddress,
			SignatureKey: signatureKey,
		},
		Sync: Sync{
			CatchupInterval: catchupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
