package service

import (
	"context"
	"time"

	"github.com/joylabs/catalogsync/models"
)

// ProgressFunc receives progress snapshots while a sync run is walking the
// catalog. It is called from the sync goroutine; implementations must be
// fast and must not block.
type ProgressFunc func(models.SyncProgress)

// SyncService performs the actual synchronization work. It is driven
// exclusively by the [SyncCoordinator]; collaborators never call it
// directly, so mutual exclusion stays in one place.
type SyncService interface {
	// FullSync clears the local replica and rebuilds it by streaming every
	// object type from the remote API in dependency order.
	FullSync(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error)

	// IncrementalSync fetches and merges only objects modified at or after
	// beginTime, across the same object types a full sync covers. A zero
	// beginTime fetches everything.
	IncrementalSync(ctx context.Context, beginTime time.Time, onProgress ProgressFunc) (models.SyncSummary, error)
}

// UpdateBuilder turns a local edit into a version-safe remote write. It
// implements the fetch-merge-submit protocol required by the remote's
// hierarchical optimistic locking.
type UpdateBuilder interface {
	// ApplyChange fetches the current remote object graph, merges the local
	// field changes onto it, submits the result, and persists the
	// remote-confirmed object locally. A persistent VERSION_MISMATCH is
	// surfaced as ErrConflictRetryExhausted after a bounded number of
	// fetch-merge-retry cycles.
	ApplyChange(ctx context.Context, change models.LocalChange) (models.CatalogObject, error)
}

// SyncCoordinator owns the global "is a sync running" state machine
// (idle → syncing → idle|error). All sync entry points go through it; a
// request while syncing is rejected with ErrSyncInProgress, not queued.
type SyncCoordinator interface {
	// StartFullSync runs a full clear-and-rebuild sync.
	StartFullSync(ctx context.Context) (models.SyncSummary, error)

	// StartIncrementalSync runs an incremental sync from the last
	// successful checkpoint.
	StartIncrementalSync(ctx context.Context) (models.SyncSummary, error)

	// StartCatchupSync covers any gap since the last successful sync: an
	// incremental sync when a checkpoint exists, a full sync otherwise.
	StartCatchupSync(ctx context.Context) (models.SyncSummary, error)

	// Status returns a snapshot of the persisted sync status.
	Status(ctx context.Context) (models.SyncStatus, error)

	// Subscribe returns a stream of status events and a cancel function
	// that must be called when the subscriber is done.
	Subscribe() (<-chan Event, func())

	// Publish emits an event to every subscriber. Used by collaborators
	// (e.g. the image invalidator) that feed the same status stream.
	Publish(event Event)
}

// WebhookDeduplicator filters inbound change notifications before they can
// trigger a catch-up sync: duplicate event ids and echoes of the app's own
// recent writes are dropped.
type WebhookDeduplicator interface {
	// HandleNotification processes one inbound notification. It returns
	// true when the notification was accepted and a catch-up sync was
	// triggered, false when it was deduplicated. The sync itself runs in
	// the background so the webhook request is acknowledged promptly.
	HandleNotification(ctx context.Context, notification models.ChangeNotification) (bool, error)

	// RecordLocalWrite remembers that the app itself just wrote the object,
	// so the echoing notification arriving within the dedup window is
	// suppressed.
	RecordLocalWrite(objectType, objectID string)

	// Cleanup evicts expired entries from the bounded caches. Called
	// periodically by a background job.
	Cleanup(now time.Time)
}

// ImageInvalidator evicts stale cached media in response to change
// notifications, keyed by remote object identity.
type ImageInvalidator interface {
	// OnNotification evicts the cached media belonging to the object the
	// notification is about (the image itself, or every image referenced by
	// an image-owning object).
	OnNotification(ctx context.Context, notification models.ChangeNotification) error
}

// CatchupJob is the background worker that periodically runs a catch-up
// sync so the replica converges even if notifications are lost.
type CatchupJob interface {
	// Start launches the background goroutine. It syncs once right away to
	// cover downtime, then every interval, defaulting to 5 minutes if
	// interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
