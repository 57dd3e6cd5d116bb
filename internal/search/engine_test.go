package search

import (
	"context"
	"sync"
	"testing"

	"github.com/rawblock/seedsearch/internal/filter"
	"github.com/rawblock/seedsearch/pkg/resultsink"
)

func compileAcceptAll(t *testing.T) *filter.Compiled {
	t.Helper()
	compiled, err := filter.Compile(filter.Document{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return compiled
}

// TestEngine_SequentialExhaustsOneBatch verifies Testable Property 6:
// the sequential driver searches exactly 35^BatchChars seeds per claimed
// batch, regardless of thread count, and every seed is reported exactly
// once (a MUST-free document accepts everything).
func TestEngine_SequentialExhaustsOneBatch(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[string]int)

	e := New(Config{
		Compiled:   compileAcceptAll(t),
		BatchChars: 1,
		StartBatch: 0,
		EndBatch:   1,
		Threads:    4,
		Sink: func(r resultsink.Result) {
			mu.Lock()
			seen[r.Seed]++
			mu.Unlock()
		},
	})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := e.Progress().SeedsSearched; got != 35 {
		t.Errorf("expected 35 seeds searched for one batch of BatchChars=1, got %d", got)
	}
	if len(seen) != 35 {
		t.Errorf("expected 35 distinct accepted seeds, got %d", len(seen))
	}
	for seed, count := range seen {
		if count != 1 {
			t.Errorf("seed %q reported %d times, want exactly once", seed, count)
		}
	}
	if e.Status() != StatusCompleted {
		t.Errorf("expected StatusCompleted after Run returns, got %v", e.Status())
	}
}

// TestEngine_ProviderModeExhausts verifies the Provider enumeration mode
// drains exactly the seeds yielded and stops once the provider reports
// exhaustion, without ever claiming a sequential batch range.
func TestEngine_ProviderModeExhausts(t *testing.T) {
	want := []string{"A1", "A2", "A3", "A4", "A5"}
	var idx int
	var provMu sync.Mutex
	provider := func() (string, bool) {
		provMu.Lock()
		defer provMu.Unlock()
		if idx >= len(want) {
			return "", false
		}
		s := want[idx]
		idx++
		return s, true
	}

	var mu sync.Mutex
	seen := make(map[string]bool)

	e := New(Config{
		Compiled:   compileAcceptAll(t),
		Provider:   provider,
		StartBatch: 0,
		EndBatch:   1000, // provider mode: batch-range only bounds claim attempts
		Threads:    1,
		Sink: func(r resultsink.Result) {
			mu.Lock()
			seen[r.Seed] = true
			mu.Unlock()
		},
	})

	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, s := range want {
		if !seen[s] {
			t.Errorf("provider seed %q was never evaluated", s)
		}
	}
}

// TestEngine_PauseResumeStatus verifies Pause moves the engine to
// StatusPaused, Resume moves it back to StatusRunning, and a resumed
// engine still runs to completion.
func TestEngine_PauseResumeStatus(t *testing.T) {
	e := New(Config{
		Compiled:   compileAcceptAll(t),
		BatchChars: 1,
		StartBatch: 0,
		EndBatch:   0, // no batches to claim; we only exercise the pause gate
		Threads:    1,
	})
	e.Pause()
	if e.Status() != StatusPaused {
		t.Fatalf("expected StatusPaused, got %v", e.Status())
	}
	e.Resume()
	if e.Status() != StatusRunning {
		t.Fatalf("expected StatusRunning after Resume, got %v", e.Status())
	}
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

// TestEngine_DisposeStopsWorkers verifies Dispose halts the worker pool
// even mid-range, leaving status Disposed rather than Completed.
func TestEngine_DisposeStopsWorkers(t *testing.T) {
	e := New(Config{
		Compiled:   compileAcceptAll(t),
		BatchChars: 2,
		StartBatch: 0,
		EndBatch:   1_000_000,
		Threads:    1,
	})
	e.Dispose()
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.Status() != StatusDisposed {
		t.Errorf("expected StatusDisposed, got %v", e.Status())
	}
}
