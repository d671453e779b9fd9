// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
)

func newTestPool(size int) *TransferPool {
	return NewTransferPool(config.ClientWorkers{TransferConcurrency: size}, logger.Nop())
}

// countingTask records how many tasks run at the same time.
type countingTask struct {
	name    string
	running *atomic.Int32
	peak    *atomic.Int32
	err     error
}

func (c *countingTask) Name() string { return c.name }

func (c *countingTask) Run(context.Context) error {
	n := c.running.Add(1)
	defer c.running.Add(-1)

	for {
		p := c.peak.Load()
		if n <= p || c.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return c.err
}

func TestTransferPool_Run_AllTasksAreCalled(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]int{}

	tasks := make([]Task, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		tasks = append(tasks, TaskFunc{Label: name, Fn: func(context.Context) error {
			mu.Lock()
			seen[name]++
			mu.Unlock()
			return nil
		}})
	}

	results := newTestPool(2).Run(context.Background(), tasks)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, name := range []string{"a", "b", "c"} {
		if seen[name] != 1 {
			t.Errorf("task %s: expected 1 run, got %d", name, seen[name])
		}
	}
}

func TestTransferPool_Run_ResultsKeepInputOrder(t *testing.T) {
	tasks := []Task{
		TaskFunc{Label: "slow", Fn: func(context.Context) error { time.Sleep(20 * time.Millisecond); return nil }},
		TaskFunc{Label: "fast", Fn: func(context.Context) error { return nil }},
	}

	results := newTestPool(2).Run(context.Background(), tasks)

	if results[0].Name != "slow" || results[1].Name != "fast" {
		t.Errorf("unexpected order: %s, %s", results[0].Name, results[1].Name)
	}
	if results[0].ID == "" || results[0].ID == results[1].ID {
		t.Errorf("expected distinct ids, got %q and %q", results[0].ID, results[1].ID)
	}
}

func TestTransferPool_Run_BoundedConcurrency(t *testing.T) {
	var running, peak atomic.Int32

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = &countingTask{name: "t", running: &running, peak: &peak}
	}

	newTestPool(3).Run(context.Background(), tasks)

	if got := peak.Load(); got > 3 {
		t.Errorf("expected at most 3 concurrent tasks, saw %d", got)
	}
}

func TestTransferPool_Run_FailureDoesNotStopOthers(t *testing.T) {
	var running, peak atomic.Int32
	boom := errors.New("boom")

	tasks := []Task{
		&countingTask{name: "ok-1", running: &running, peak: &peak},
		&countingTask{name: "bad", running: &running, peak: &peak, err: boom},
		&countingTask{name: "ok-2", running: &running, peak: &peak},
	}

	results := newTestPool(1).Run(context.Background(), tasks)

	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "bad" || !errors.Is(failed[0].Err, boom) {
		t.Errorf("unexpected failures: %+v", failed)
	}
}

func TestTransferPool_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	results := newTestPool(1).Run(ctx, []Task{TaskFunc{Label: "x", Fn: func(context.Context) error {
		called = true
		return nil
	}}})

	if called {
		t.Error("task must not run on a cancelled context")
	}
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results[0].Err)
	}
}

func TestTransferPool_Run_Empty(t *testing.T) {
	// Should not panic on an empty task list
	if results := newTestPool(2).Run(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestNewTransferPool_MinimumSize(t *testing.T) {
	if p := newTestPool(0); p.size != 1 {
		t.Errorf("expected size 1, got %d", p.size)
	}
}
