// Package search implements the batch/lane search driver spec.md §4.5
// describes: sequential (full keyspace) and provider (injected seed
// source) enumeration modes, atomic batch-index claiming across a fixed
// worker pool, pause/resume barriers, and throttled progress reporting —
// the same symmetric-worker, atomic-counter shape the teacher's
// BlockScanner (internal/scanner/block_scanner.go) uses for its
// historical scan loop, generalized from one sequential range to a
// claimed-batch pool shared by N threads.
package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rawblock/seedsearch/internal/alphabet"
	"github.com/rawblock/seedsearch/internal/filter"
	"github.com/rawblock/seedsearch/internal/prng"
	"github.com/rawblock/seedsearch/internal/simd"
	"github.com/rawblock/seedsearch/pkg/resultsink"
)

// Status is the search's atomic lifecycle state (spec.md §5).
type Status int32

const (
	StatusRunning Status = iota
	StatusPaused
	StatusCompleted
	StatusDisposed
)

// SeedProvider yields the next seed to evaluate in Provider mode, and
// false once exhausted (spec.md §4.5 "Provider").
type SeedProvider func() (string, bool)

// Config parameterizes one search run. Exactly one of Provider being nil
// or non-nil selects Sequential vs Provider mode.
type Config struct {
	Compiled *filter.Compiled

	// BatchChars is B, the sequential-mode batch character count
	// (recommended 2..4). Ignored in Provider mode.
	BatchChars int
	StartBatch uint64
	EndBatch   uint64

	Provider SeedProvider

	Threads          int           // default: GOMAXPROCS
	ProgressInterval time.Duration // default: 1s

	Cutoff *filter.Cutoff
	Sink   resultsink.Sink

	OnProgress func(Progress)
}

// Progress is a point-in-time snapshot, read lock-free off plain atomic
// loads (spec.md §5: "no locks on the hot path").
type Progress struct {
	RunID         string
	Elapsed       time.Duration
	SeedsSearched uint64
	MatchesFound  uint64
	BatchesDone   uint64
	BatchesTotal  uint64
}

// Engine drives one search run. It is not reusable across runs — build
// a new Engine per Run call.
type Engine struct {
	cfg   Config
	runID uuid.UUID

	status           atomic.Int32
	batchIndex       atomic.Uint64
	completedBatches atomic.Uint64
	seedsSearched    atomic.Uint64
	matchingSeeds    atomic.Uint64

	pauseMu    sync.Mutex
	paused     bool
	resumeCond *sync.Cond

	providerMu sync.Mutex
	startTime  time.Time
}

// New constructs an Engine ready to Run. Its identity (RunID) is a fresh
// UUID, carried in every Progress snapshot so an orchestrating caller can
// tell its concurrent runs apart.
func New(cfg Config) *Engine {
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = time.Second
	}
	e := &Engine{cfg: cfg, runID: uuid.New()}
	e.resumeCond = sync.NewCond(&e.pauseMu)
	e.batchIndex.Store(cfg.StartBatch)
	e.status.Store(int32(StatusRunning))
	return e
}

// RunID returns this engine's identity.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// Run launches the worker pool and blocks until every batch in
// [StartBatch, EndBatch) has been claimed and processed, the context is
// cancelled, or Dispose is called. It returns the first worker error, if
// any (workers here never return an error themselves — errgroup is used
// for its cancellation-propagation and join semantics, matching spec.md
// §5's "no leader, symmetric threads, bounded join at shutdown").
func (e *Engine) Run(ctx context.Context) error {
	e.startTime = time.Now()
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < e.cfg.Threads; i++ {
		g.Go(func() error {
			e.workerLoop(ctx)
			return nil
		})
	}

	progressDone := make(chan struct{})
	go func() {
		defer close(progressDone)
		e.progressLoop(ctx)
	}()

	err := g.Wait()
	if Status(e.status.Load()) == StatusRunning {
		e.status.Store(int32(StatusCompleted))
	}
	<-progressDone
	return err
}

// Pause transitions to Paused; workers block at their next batch
// boundary until Resume is called.
func (e *Engine) Pause() {
	e.pauseMu.Lock()
	defer e.pauseMu.Unlock()
	e.paused = true
	e.status.Store(int32(StatusPaused))
}

// Resume releases paused workers.
func (e *Engine) Resume() {
	e.pauseMu.Lock()
	defer e.pauseMu.Unlock()
	e.paused = false
	e.status.Store(int32(StatusRunning))
	e.resumeCond.Broadcast()
}

// Dispose requests cooperative shutdown. Idempotent, per spec.md §5.
func (e *Engine) Dispose() {
	e.status.Store(int32(StatusDisposed))
	e.pauseMu.Lock()
	e.paused = false
	e.resumeCond.Broadcast()
	e.pauseMu.Unlock()
}

// Status reports the current lifecycle state.
func (e *Engine) Status() Status { return Status(e.status.Load()) }

// Progress reads a lock-free snapshot of run counters.
func (e *Engine) Progress() Progress {
	return Progress{
		RunID:         e.runID.String(),
		Elapsed:       time.Since(e.startTime),
		SeedsSearched: e.seedsSearched.Load(),
		MatchesFound:  e.matchingSeeds.Load(),
		BatchesDone:   e.completedBatches.Load(),
		BatchesTotal:  e.cfg.EndBatch - e.cfg.StartBatch,
	}
}

func (e *Engine) waitIfPaused() {
	e.pauseMu.Lock()
	for e.paused {
		e.resumeCond.Wait()
	}
	e.pauseMu.Unlock()
}

func (e *Engine) workerLoop(ctx context.Context) {
	var localSearched, localMatches uint64
	lastFlush := time.Now()
	defer func() {
		e.seedsSearched.Add(localSearched)
		e.matchingSeeds.Add(localMatches)
	}()

	for {
		if ctx.Err() != nil {
			return
		}
		e.waitIfPaused()
		if Status(e.status.Load()) == StatusDisposed {
			return
		}

		idx := e.batchIndex.Add(1) - 1
		if idx >= e.cfg.EndBatch {
			return
		}

		searched, matches := e.runBatch(idx)
		localSearched += searched
		localMatches += matches
		e.completedBatches.Add(1)

		if time.Since(lastFlush) >= time.Second {
			e.seedsSearched.Add(localSearched)
			e.matchingSeeds.Add(localMatches)
			localSearched, localMatches = 0, 0
			lastFlush = time.Now()
		}
	}
}

func (e *Engine) progressLoop(ctx context.Context) {
	if e.cfg.OnProgress == nil {
		return
	}
	ticker := time.NewTicker(e.cfg.ProgressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		e.cfg.OnProgress(e.Progress())
		switch Status(e.status.Load()) {
		case StatusCompleted, StatusDisposed:
			return
		}
	}
}

func (e *Engine) runBatch(idx uint64) (searched, matches uint64) {
	if e.cfg.Provider != nil {
		return e.runProviderBatch()
	}
	return e.runSequentialBatch(idx)
}

func (e *Engine) runSequentialBatch(idx uint64) (searched, matches uint64) {
	b := e.cfg.BatchChars
	trailingLen := alphabet.MaxLength - b
	trailing := decodeBase35(idx, trailingLen)
	leadingCombos := pow35(b)
	width := uint64(simd.ResolveWidthCapped(prng.MaxLanes))

	for start := uint64(0); start < leadingCombos; start += width {
		n := width
		if start+n > leadingCombos {
			n = leadingCombos - start
		}
		for lane := uint64(0); lane < n; lane++ {
			if Status(e.status.Load()) == StatusDisposed {
				return searched, matches
			}
			leading := decodeBase35(start+lane, b)
			seed := string(leading) + string(trailing)
			searched++
			if e.evaluateAndEmit(seed) {
				matches++
			}
		}
	}
	return searched, matches
}

func (e *Engine) runProviderBatch() (searched, matches uint64) {
	width := simd.ResolveWidthCapped(prng.MaxLanes)
	seeds := make([]string, 0, width)

	e.providerMu.Lock()
	for i := 0; i < width; i++ {
		seed, ok := e.cfg.Provider()
		if !ok {
			break
		}
		seeds = append(seeds, seed)
	}
	e.providerMu.Unlock()

	for _, seed := range seeds {
		searched++
		if e.evaluateAndEmit(seed) {
			matches++
		}
	}
	return searched, matches
}

// evaluateAndEmit runs the two-stage pipeline for one seed and reports
// it to the sink if it passes both stages and the cutoff.
func (e *Engine) evaluateAndEmit(seed string) bool {
	if !filter.EvaluatePrefilter(seed, e.cfg.Compiled) {
		return false
	}
	ok, score, counts := filter.EvaluateScalar(seed, e.cfg.Compiled)
	if !ok {
		return false
	}
	if e.cfg.Cutoff != nil && !e.cfg.Cutoff.Accept(score) {
		return false
	}
	if e.cfg.Sink != nil {
		e.cfg.Sink(resultsink.Result{Seed: seed, TotalScore: score, PerClauseCounts: counts})
	}
	return true
}

func decodeBase35(idx uint64, length int) []byte {
	out := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		out[i] = alphabet.AtIndex(int(idx % uint64(alphabet.Size)))
		idx /= uint64(alphabet.Size)
	}
	return out
}

func pow35(exp int) uint64 {
	r := uint64(1)
	for i := 0; i < exp; i++ {
		r *= uint64(alphabet.Size)
	}
	return r
}
