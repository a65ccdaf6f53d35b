// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/models"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

type mockDocumentRepo struct {
	deleteOlderThanFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockDocumentRepo) Save(_ context.Context, doc models.Document) (models.Document, error) {
	return doc, nil
}

func (m *mockDocumentRepo) List(_ context.Context) ([]models.OutputFileEntry, error) {
	return nil, nil
}

func (m *mockDocumentRepo) FindByFilename(_ context.Context, _ string) (models.Document, error) {
	return models.Document{}, nil
}

func (m *mockDocumentRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.deleteOlderThanFn != nil {
		return m.deleteOlderThanFn(ctx, cutoff)
	}
	return 0, nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()

	if w1.runCount != 1 || w2.runCount != 1 {
		t.Errorf("expected each worker to run once, got %d and %d", w1.runCount, w2.runCount)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestNewWorkers_RetentionDisabledByZeroMaxAge(t *testing.T) {
	ws := NewWorkers(context.Background(), nil, config.Workers{
		CleanupInterval: time.Minute,
		DocumentMaxAge:  0,
	}, logger.Nop())

	if len(ws.workers) != 0 {
		t.Errorf("expected no workers, got %d", len(ws.workers))
	}
}

func TestRetentionWorker_DeletesOnTick(t *testing.T) {
	var calls atomic.Int64
	documents := &mockDocumentRepo{
		deleteOlderThanFn: func(_ context.Context, cutoff time.Time) (int64, error) {
			calls.Add(1)
			if time.Since(cutoff) < 40*time.Minute {
				t.Errorf("cutoff %v is newer than the configured max age", cutoff)
			}
			return 2, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := newRetentionWorker(ctx, documents, config.Workers{
		CleanupInterval: 10 * time.Millisecond,
		DocumentMaxAge:  time.Hour,
	}, logger.Nop())
	worker.Run()

	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("cleanup was never invoked")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRetentionWorker_StopsOnContextCancel(t *testing.T) {
	var calls atomic.Int64
	documents := &mockDocumentRepo{
		deleteOlderThanFn: func(_ context.Context, _ time.Time) (int64, error) {
			calls.Add(1)
			return 0, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	worker := newRetentionWorker(ctx, documents, config.Workers{
		CleanupInterval: 5 * time.Millisecond,
		DocumentMaxAge:  time.Hour,
	}, logger.Nop())
	worker.Run()

	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)

	if calls.Load() != after {
		t.Error("cleanup kept running after context cancellation")
	}
}
