package workers

import (
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/service"
)

type Workers struct {
	workers []Worker

	services *service.Services
}

// NewWorkers assembles the background workers of the application: currently
// the periodic catch-up sync job.
func NewWorkers(services *service.Services, cfg config.Sync) *Workers {
	return &Workers{
		workers: []Worker{
			&catchupWorker{job: services.CatchupJob, interval: cfg.CatchupInterval},
		},
		services: services,
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts the background workers down and waits for them to finish.
func (w *Workers) Stop() {
	if w.services != nil && w.services.CatchupJob != nil {
		w.services.CatchupJob.Stop()
	}
}
