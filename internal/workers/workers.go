package workers

import (
	"context"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by configuration.
// A nil-worker set is valid: Run becomes a no-op.
func NewWorkers(ctx context.Context, storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.DocumentMaxAge > 0 {
		ws.workers = append(ws.workers, newRetentionWorker(ctx, storages.DocumentRepository, cfg, logger))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
