package workers

import (
	"context"

	"github.com/MKhiriev/go-influo/internal/config"
	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers the server runs alongside the
// HTTP transport.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newResetPurgeWorker(storages.Resets, cfg.ResetPurgeInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
