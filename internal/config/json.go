package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONConfig mirrors [Config] with JSON-friendly field types so duration
// values can be written as "5m" / "30s" strings in the config file.
type JSONConfig struct {
	CatalogAPI struct {
		BaseURL     string   `json:"base_url"`
		AccessToken string   `json:"access_token"`
		Version     string   `json:"version"`
		Timeout     Duration `json:"timeout"`
		RetryCount  int      `json:"retry_count"`
	} `json:"catalog_api,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Images struct {
			CacheDir string `json:"cache_dir"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Webhook struct {
		HTTPAddress    string   `json:"address"`
		SignatureKey   string   `json:"signature_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"webhook,omitempty"`

	Sync struct {
		CatchupInterval     Duration `json:"catchup_interval"`
		ProgressEvery       int      `json:"progress_every"`
		DedupWindow         Duration `json:"dedup_window"`
		ConflictRetryLimit  int      `json:"conflict_retry_limit"`
		SuspicionMinLocal   int64    `json:"suspicion_min_local"`
		SuspicionMaxGap     Duration `json:"suspicion_max_gap"`
		ValidationSkipLimit int64    `json:"validation_skip_limit"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		CatalogAPI: CatalogAPI{
			BaseURL:     jsonCfg.CatalogAPI.BaseURL,
			AccessToken: jsonCfg.CatalogAPI.AccessToken,
			Version:     jsonCfg.CatalogAPI.Version,
			Timeout:     time.Duration(jsonCfg.CatalogAPI.Timeout),
			RetryCount:  jsonCfg.CatalogAPI.RetryCount,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Images: Images{
				CacheDir: jsonCfg.Storage.Images.CacheDir,
			},
		},
		Webhook: Webhook{
			HTTPAddress:    jsonCfg.Webhook.HTTPAddress,
			SignatureKey:   jsonCfg.Webhook.SignatureKey,
			RequestTimeout: time.Duration(jsonCfg.Webhook.RequestTimeout),
		},
		Sync: Sync{
			CatchupInterval:     time.Duration(jsonCfg.Sync.CatchupInterval),
			ProgressEvery:       jsonCfg.Sync.ProgressEvery,
			DedupWindow:         time.Duration(jsonCfg.Sync.DedupWindow),
			ConflictRetryLimit:  jsonCfg.Sync.ConflictRetryLimit,
			SuspicionMinLocal:   jsonCfg.Sync.SuspicionMinLocal,
			SuspicionMaxGap:     time.Duration(jsonCfg.Sync.SuspicionMaxGap),
			ValidationSkipLimit: jsonCfg.Sync.ValidationSkipLimit,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
