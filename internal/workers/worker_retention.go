// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package workers

import (
	"context"
	"time"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
)

// retentionWorker periodically removes generated documents older than the
// configured maximum age.
type retentionWorker struct {
	ctx       context.Context
	documents store.DocumentRepository

	interval time.Duration
	maxAge   time.Duration

	logger *logger.Logger
}

func newRetentionWorker(ctx context.Context, documents store.DocumentRepository, cfg config.Workers, logger *logger.Logger) *retentionWorker {
	return &retentionWorker{
		ctx:       ctx,
		documents: documents,
		interval:  cfg.CleanupInterval,
		maxAge:    cfg.DocumentMaxAge,
		logger:    logger,
	}
}

// Run starts the cleanup loop in its own goroutine and returns immediately.
// The loop stops when the worker context is cancelled.
func (w *retentionWorker) Run() {
	w.logger.Info().
		Dur("interval", w.interval).
		Dur("max_age", w.maxAge).
		Msg("starting document retention worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				w.logger.Info().Msg("document retention worker stopped")
				return
			case <-ticker.C:
				w.cleanup()
			}
		}
	}()
}

func (w *retentionWorker) cleanup() {
	cutoff := time.Now().Add(-w.maxAge)

	deleted, err := w.documents.DeleteOlderThan(w.ctx, cutoff)
	if err != nil {
		w.logger.Error().Err(err).Msg("document retention cleanup failed")
		return
	}

	if deleted > 0 {
		w.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("removed expired documents")
	}
}
