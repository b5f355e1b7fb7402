// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-obs-kit/internal/config"
	"github.com/MKhiriev/go-obs-kit/internal/logger"
	"github.com/MKhiriev/go-obs-kit/internal/metrics"
)

// exportWorker periodically flushes the metrics collector's snapshot to disk.
// Each flush is itself instrumented, so export latency shows up in the
// collector like any other measured operation.
type exportWorker struct {
	collector *metrics.Collector
	cfg       config.Metrics
	logger    *logger.Logger

	flush metrics.Operation

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExportWorker creates a worker that writes the metrics snapshot to
// cfg.ExportPath every cfg.ExportInterval. The worker is idle until Run is
// called; a zero or negative interval makes Run a no-op, leaving only the
// final flush at shutdown.
func NewExportWorker(collector *metrics.Collector, cfg config.Metrics, logger *logger.Logger) Worker {
	w := &exportWorker{
		collector: collector,
		cfg:       cfg,
		logger:    logger,
	}
	w.flush = metrics.Instrument(logger, "metrics_export", func(ctx context.Context) error {
		return collector.Export(cfg.ExportPath)
	})
	return w
}

func (w *exportWorker) Run() {
	if w.cfg.ExportInterval <= 0 || w.cfg.ExportPath == "" {
		return
	}

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.cfg.ExportInterval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := w.flush(ctx); err != nil {
					w.logger.Error().Err(err).Msg("periodic metrics export failed")
				}
			}
		}
	}()
}

// Stop cancels the ticker goroutine, waits for it to exit, and performs one
// final flush so no samples are lost at shutdown. Safe to call when the
// worker never started.
func (w *exportWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()

	if w.cfg.ExportPath == "" {
		return
	}
	if err := w.flush(context.Background()); err != nil {
		w.logger.Error().Err(err).Msg("final metrics export failed")
	}
}
