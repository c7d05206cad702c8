package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joylabs/catalogsync/internal/logger"
)

// catchupJob periodically runs a catch-up sync through the coordinator so
// the replica converges even when change notifications are lost. It also
// drives the deduplicator's cache cleanup on the same tick.
type catchupJob struct {
	coordinator SyncCoordinator
	dedup       WebhookDeduplicator
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatchupJob creates a catchupJob that calls StartCatchupSync on a
// ticker. The job is idle until Start is called.
func NewCatchupJob(coordinator SyncCoordinator, dedup WebhookDeduplicator, l *logger.Logger) CatchupJob {
	return &catchupJob{
		coordinator: coordinator,
		dedup:       dedup,
		logger:      l,
	}
}

// Start implements CatchupJob. It stops any previously running job, then
// launches a background goroutine that runs a catch-up sync immediately and
// again every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *catchupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		// cover the gap accumulated while the process was down before the
		// first tick arrives
		j.runOnce(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *catchupJob) runOnce(ctx context.Context) {
	j.dedup.Cleanup(time.Now())
	if _, err := j.coordinator.StartCatchupSync(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
		j.logger.Error().
			Str("func", "runOnce").
			Err(err).
			Msg("scheduled catch-up sync failed")
	}
}

// Stop implements CatchupJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *catchupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
