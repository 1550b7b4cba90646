// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only when its context is done.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on an empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Concurrent(t *testing.T) {
	b1 := &blockingWorker{}
	b2 := &blockingWorker{}
	ws := NewWorkers(b1, b2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned while workers were still running")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if !b1.stopped.Load() || !b2.stopped.Load() {
		t.Error("expected both workers to observe cancellation")
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Run(context.Background())

	if got := w.runCount.Load(); got != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", got)
	}
}
