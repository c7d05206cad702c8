package service

import (
	"github.com/joylabs/catalogsync/internal/adapter"
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
)

// Services groups every service of the sync engine into a single value that
// can be passed to the transport and worker layers.
type Services struct {
	Sync             SyncService
	Coordinator      SyncCoordinator
	Dedup            WebhookDeduplicator
	UpdateBuilder    UpdateBuilder
	ImageInvalidator ImageInvalidator
	CatchupJob       CatchupJob
}

// NewServices wires the full service graph: the sync service runs under the
// coordinator, the deduplicator triggers catch-up syncs through it, the
// update builder reports its writes to the deduplicator, and the catch-up
// job keeps both the replica and the dedup caches fresh.
func NewServices(storages *store.Storages, api adapter.CatalogAPI, cfg config.Sync, logger *logger.Logger) *Services {
	syncSvc := NewSyncService(api, storages.Catalog, cfg, logger)
	coordinator := NewSyncCoordinator(syncSvc, storages.SyncStatus, logger)
	dedup := NewWebhookDeduplicator(coordinator, cfg, logger)

	return &Services{
		Sync:             syncSvc,
		Coordinator:      coordinator,
		Dedup:            dedup,
		UpdateBuilder:    NewUpdateBuilder(api, storages.Catalog, dedup, cfg, logger),
		ImageInvalidator: NewImageInvalidator(storages.Images, storages.Catalog, coordinator, logger),
		CatchupJob:       NewCatchupJob(coordinator, dedup, logger),
	}
}
