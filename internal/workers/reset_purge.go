// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-influo/internal/logger"
	"github.com/MKhiriev/go-influo/internal/store"
)

const defaultResetPurgeInterval = time.Hour

// resetPurgeWorker periodically deletes expired password-reset tickets.
// The reset flow already consumes dead tickets when it touches them; the
// worker only sweeps the ones nobody came back for.
type resetPurgeWorker struct {
	resets   store.ResetRepository
	interval time.Duration

	logger *logger.Logger
}

func newResetPurgeWorker(resets store.ResetRepository, interval time.Duration, logger *logger.Logger) *resetPurgeWorker {
	if interval <= 0 {
		interval = defaultResetPurgeInterval
	}
	return &resetPurgeWorker{
		resets:   resets,
		interval: interval,
		logger:   logger,
	}
}

func (w *resetPurgeWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *resetPurgeWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reset purge worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *resetPurgeWorker) purge(ctx context.Context) {
	purged, err := w.resets.PurgeExpired(ctx, time.Now())
	if err != nil {
		w.logger.Err(err).Msg("purging expired reset tickets failed")
		return
	}
	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("expired reset tickets purged")
	}
}
