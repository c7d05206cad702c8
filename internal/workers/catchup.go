package workers

import (
	"context"
	"time"

	"github.com/joylabs/catalogsync/internal/service"
)

// catchupWorker adapts the periodic catch-up sync job to the Worker
// interface.
type catchupWorker struct {
	job      service.CatchupJob
	interval time.Duration
}

func (w *catchupWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}
