package store

import (
	"context"
	"fmt"

	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
)

// Storages groups all local persistence backends into a single value that
// can be passed around the service layer.
type Storages struct {
	// Catalog is the SQLite-backed replica of the remote catalog.
	Catalog CatalogRepository

	// SyncStatus persists the singleton sync status record.
	SyncStatus SyncStatusRepository

	// Images is the on-disk cache of catalog media keyed by remote identity.
	Images ImageFileCache
}

// NewStorages initialises the local persistence layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Creates the image cache directory and constructs a [Storages] value
//     wired to fresh repositories.
//
// Returns an error if the database connection cannot be established, if
// migration fails, or if the image cache directory cannot be created.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	images, err := NewImageFileCache(cfg.Images.CacheDir, logger)
	if err != nil {
		return nil, fmt.Errorf("image cache init failed: %w", err)
	}

	return &Storages{
		Catalog:    NewCatalogRepository(db, logger),
		SyncStatus: NewSyncStatusRepository(db, logger),
		Images:     images,
	}, nil
}
