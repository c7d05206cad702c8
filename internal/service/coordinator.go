package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

// subscriberBuffer is the event buffer per subscriber. A subscriber that
// falls further behind loses events rather than stalling the sync goroutine.
const subscriberBuffer = 16

// syncCoordinator owns the idle/syncing state machine. Every sync entry
// point (API handlers, webhook path, background job) funnels through it, so
// at most one sync runs at any time and concurrent requests are rejected
// with ErrSyncInProgress rather than queued.
type syncCoordinator struct {
	syncSvc SyncService
	status  store.SyncStatusRepository
	logger  *logger.Logger

	mu        sync.Mutex
	isSyncing bool

	subMu       sync.Mutex
	subscribers map[int]chan Event
	nextSubID   int
}

// NewSyncCoordinator wires a SyncCoordinator over the sync service and the
// persisted sync status.
func NewSyncCoordinator(syncSvc SyncService, status store.SyncStatusRepository, l *logger.Logger) SyncCoordinator {
	return &syncCoordinator{
		syncSvc:     syncSvc,
		status:      status,
		logger:      l,
		subscribers: make(map[int]chan Event),
	}
}

func (c *syncCoordinator) StartFullSync(ctx context.Context) (models.SyncSummary, error) {
	return c.run(ctx, models.SyncTypeFull, func(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error) {
		return c.syncSvc.FullSync(ctx, onProgress)
	})
}

func (c *syncCoordinator) StartIncrementalSync(ctx context.Context) (models.SyncSummary, error) {
	return c.run(ctx, models.SyncTypeIncremental, func(ctx context.Context, onProgress ProgressFunc) (models.SyncSummary, error) {
		var beginTime time.Time
		status, err := c.status.GetSyncStatus(ctx)
		if err != nil {
			return models.SyncSummary{}, fmt.Errorf("loading sync checkpoint: %w", err)
		}
		if status.LastSyncTime != nil {
			beginTime = *status.LastSyncTime
		}
		return c.syncSvc.IncrementalSync(ctx, beginTime, onProgress)
	})
}

// StartCatchupSync brings the replica up to date after a gap: incremental
// when a checkpoint exists, full on a fresh (or reset) replica.
func (c *syncCoordinator) StartCatchupSync(ctx context.Context) (models.SyncSummary, error) {
	status, err := c.status.GetSyncStatus(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("loading sync checkpoint: %w", err)
	}
	if status.LastSyncTime == nil {
		return c.StartFullSync(ctx)
	}
	return c.StartIncrementalSync(ctx)
}

func (c *syncCoordinator) Status(ctx context.Context) (models.SyncStatus, error) {
	return c.status.GetSyncStatus(ctx)
}

// run executes one sync under the coordinator's mutual exclusion, keeping
// the persisted status in step with the idle → syncing → idle|error
// transitions and publishing the corresponding events.
func (c *syncCoordinator) run(ctx context.Context, syncType string, fn func(context.Context, ProgressFunc) (models.SyncSummary, error)) (models.SyncSummary, error) {
	c.mu.Lock()
	if c.isSyncing {
		c.mu.Unlock()
		return models.SyncSummary{}, ErrSyncInProgress
	}
	c.isSyncing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isSyncing = false
		c.mu.Unlock()
	}()

	status, err := c.status.GetSyncStatus(ctx)
	if err != nil {
		return models.SyncSummary{}, fmt.Errorf("loading sync status: %w", err)
	}
	status.IsSyncing = true
	status.SyncType = syncType
	status.AttemptCount++
	if err := c.status.SaveSyncStatus(ctx, status); err != nil {
		return models.SyncSummary{}, fmt.Errorf("marking sync started: %w", err)
	}

	c.Publish(Event{Kind: EventSyncStarted, SyncType: syncType})
	c.logger.Info().
		Str("func", "run").
		Str("sync_type", syncType).
		Int64("attempt", status.AttemptCount).
		Msg("sync started")

	summary, syncErr := fn(ctx, func(p models.SyncProgress) {
		progress := p
		c.Publish(Event{Kind: EventSyncProgress, SyncType: syncType, Progress: &progress})
	})

	// The terminal status must land even when the run ended by cancellation,
	// otherwise the persisted is_syncing flag reports a phantom running sync.
	terminalCtx := context.WithoutCancel(ctx)

	status.IsSyncing = false
	if syncErr != nil {
		status.LastError = syncErr.Error()
		if err := c.status.SaveSyncStatus(terminalCtx, status); err != nil {
			c.logger.Error().Str("func", "run").Err(err).Msg("persisting failed sync status")
		}
		c.Publish(Event{Kind: EventSyncFailed, SyncType: syncType, Error: syncErr.Error()})
		c.logger.Error().
			Str("func", "run").
			Str("sync_type", syncType).
			Err(syncErr).
			Msg("sync failed")
		return summary, syncErr
	}

	now := time.Now().UTC()
	status.LastSyncTime = &now
	status.LastError = ""
	status.Cursor = ""
	if err := c.status.SaveSyncStatus(terminalCtx, status); err != nil {
		return summary, fmt.Errorf("persisting sync checkpoint: %w", err)
	}

	completed := summary
	c.Publish(Event{Kind: EventSyncCompleted, SyncType: syncType, Summary: &completed})
	return summary, nil
}

func (c *syncCoordinator) Subscribe() (<-chan Event, func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	ch := make(chan Event, subscriberBuffer)
	c.subscribers[id] = ch

	cancel := func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		if sub, ok := c.subscribers[id]; ok {
			delete(c.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers event to every subscriber without blocking: a subscriber
// whose buffer is full misses the event.
func (c *syncCoordinator) Publish(event Event) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	for _, ch := range c.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
