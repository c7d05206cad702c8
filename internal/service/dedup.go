package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/models"
)

// maxTrackedEntries caps each dedup map. When the cap is reached expired
// entries are evicted eagerly; a burst beyond the cap additionally drops the
// oldest entries, trading a possible extra catch-up sync (harmless, syncs
// are idempotent) for bounded memory.
const maxTrackedEntries = 4096

// writeKey identifies a catalog object across both dedup maps.
type writeKey struct {
	objectType string
	objectID   string
}

// webhookDeduplicator drops the two kinds of notifications that must not
// trigger a catch-up sync: redeliveries of an event id already handled, and
// echoes of the app's own recent writes. Everything else starts a background
// catch-up sync through the coordinator.
type webhookDeduplicator struct {
	coordinator SyncCoordinator
	cfg         config.Sync
	logger      *logger.Logger

	// now is a hook for tests; it defaults to time.Now.
	now func() time.Time

	mu          sync.Mutex
	seenEvents  map[string]time.Time
	localWrites map[writeKey]time.Time
}

// NewWebhookDeduplicator wires a WebhookDeduplicator in front of the sync
// coordinator.
func NewWebhookDeduplicator(coordinator SyncCoordinator, cfg config.Sync, l *logger.Logger) WebhookDeduplicator {
	return &webhookDeduplicator{
		coordinator: coordinator,
		cfg:         cfg,
		logger:      l,
		now:         time.Now,
		seenEvents:  make(map[string]time.Time),
		localWrites: make(map[writeKey]time.Time),
	}
}

func (d *webhookDeduplicator) HandleNotification(ctx context.Context, notification models.ChangeNotification) (bool, error) {
	if !models.KnownType(notification.Data.ObjectType) {
		d.logger.Debug().
			Str("func", "HandleNotification").
			Str("event_id", notification.EventID).
			Str("object_type", notification.Data.ObjectType).
			Msg("ignoring notification for unsynchronised object type")
		return false, nil
	}

	now := d.now()
	key := writeKey{objectType: notification.Data.ObjectType, objectID: notification.Data.ObjectID}

	d.mu.Lock()
	if seenAt, ok := d.seenEvents[notification.EventID]; ok && now.Sub(seenAt) <= d.cfg.DedupWindow {
		d.mu.Unlock()
		d.logger.Debug().
			Str("func", "HandleNotification").
			Str("event_id", notification.EventID).
			Msg("dropping redelivered notification")
		return false, nil
	}
	if notification.EventID != "" {
		d.remember(d.seenEvents, notification.EventID, now)
	}
	if writtenAt, ok := d.localWrites[key]; ok && now.Sub(writtenAt) <= d.cfg.DedupWindow {
		d.mu.Unlock()
		d.logger.Debug().
			Str("func", "HandleNotification").
			Str("object_id", notification.Data.ObjectID).
			Str("object_type", notification.Data.ObjectType).
			Msg("dropping echo of a local write")
		return false, nil
	}
	d.mu.Unlock()

	syncCtx := context.WithoutCancel(ctx)
	go func() {
		if _, err := d.coordinator.StartCatchupSync(syncCtx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			d.logger.Error().
				Str("func", "HandleNotification").
				Str("event_id", notification.EventID).
				Err(err).
				Msg("catch-up sync triggered by notification failed")
		}
	}()
	return true, nil
}

func (d *webhookDeduplicator) RecordLocalWrite(objectType, objectID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rememberWrite(writeKey{objectType: objectType, objectID: objectID}, d.now())
}

// Cleanup evicts every entry older than the dedup window.
func (d *webhookDeduplicator) Cleanup(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, seenAt := range d.seenEvents {
		if now.Sub(seenAt) > d.cfg.DedupWindow {
			delete(d.seenEvents, id)
		}
	}
	for key, writtenAt := range d.localWrites {
		if now.Sub(writtenAt) > d.cfg.DedupWindow {
			delete(d.localWrites, key)
		}
	}
}

// remember inserts into seenEvents under the size cap. Caller holds d.mu.
func (d *webhookDeduplicator) remember(m map[string]time.Time, id string, now time.Time) {
	if len(m) >= maxTrackedEntries {
		d.evictOldestEvent(m)
	}
	m[id] = now
}

// rememberWrite inserts into localWrites under the size cap. Caller holds
// d.mu.
func (d *webhookDeduplicator) rememberWrite(key writeKey, now time.Time) {
	if len(d.localWrites) >= maxTrackedEntries {
		var oldestKey writeKey
		var oldest time.Time
		first := true
		for k, t := range d.localWrites {
			if first || t.Before(oldest) {
				first = false
				oldestKey, oldest = k, t
			}
		}
		delete(d.localWrites, oldestKey)
	}
	d.localWrites[key] = now
}

func (d *webhookDeduplicator) evictOldestEvent(m map[string]time.Time) {
	var oldestID string
	var oldest time.Time
	first := true
	for id, t := range m {
		if first || t.Before(oldest) {
			first = false
			oldestID, oldest = id, t
		}
	}
	delete(m, oldestID)
}
