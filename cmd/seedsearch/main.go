package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rawblock/seedsearch/internal/config"
	"github.com/rawblock/seedsearch/internal/filter"
	"github.com/rawblock/seedsearch/internal/search"
	"github.com/rawblock/seedsearch/pkg/resultsink"
)

func main() {
	var (
		configPath string
		startBatch uint64
		endBatch   uint64
		threads    int
		batchSize  int
		cutoff     int
		autoCutoff bool
		prefilter  bool
		silent     bool
	)

	root := &cobra.Command{
		Use:   "seedsearch",
		Short: "Brute-force search for Balatro seeds matching a declarative filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(runOptions{
				configPath: configPath,
				startBatch: startBatch,
				endBatch:   endBatch,
				threads:    threads,
				batchSize:  batchSize,
				cutoff:     cutoff,
				autoCutoff: autoCutoff,
				prefilter:  prefilter,
				silent:     silent,
			})
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to the filter document (required)")
	root.Flags().Uint64Var(&startBatch, "startBatch", 0, "first batch index to search (inclusive)")
	root.Flags().Uint64Var(&endBatch, "endBatch", 0, "last batch index to search (exclusive); 0 means 35^(8-batchSize), every batch")
	root.Flags().IntVar(&threads, "threads", 0, "worker thread count (default: all cores)")
	root.Flags().IntVar(&batchSize, "batchSize", 3, "sequential-mode batch character count (2..4)")
	root.Flags().IntVar(&cutoff, "cutoff", 0, "fixed score cutoff; ignored if --autoCutoff is set")
	root.Flags().BoolVar(&autoCutoff, "autoCutoff", false, "use the adaptive high-water-mark cutoff instead of a fixed one")
	root.Flags().BoolVar(&prefilter, "prefilter", true, "accepted but not consulted: the prefilter always runs before scalar verification")
	root.Flags().BoolVar(&silent, "silent", false, "suppress progress output on stderr")
	root.MarkFlagRequired("config")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "seedsearch:", err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath string
	startBatch uint64
	endBatch   uint64
	threads    int
	batchSize  int
	cutoff     int
	autoCutoff bool
	prefilter  bool
	silent     bool
}

func run(opts runOptions) error {
	if opts.batchSize < 2 || opts.batchSize > 4 {
		return fmt.Errorf("--batchSize must be between 2 and 4, got %d", opts.batchSize)
	}

	doc, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	compiled, err := filter.Compile(doc)
	if err != nil {
		return err
	}

	endBatch := opts.endBatch
	if endBatch == 0 {
		endBatch = pow35(8 - opts.batchSize)
	}

	var cut *filter.Cutoff
	if opts.autoCutoff {
		cut = filter.NewAutoCutoff()
	} else if opts.cutoff > 0 {
		cut = filter.NewFixedCutoff(opts.cutoff)
	}

	w := newCSVWriter(os.Stdout)
	defer w.Flush()

	var onProgress func(search.Progress)
	if !opts.silent {
		onProgress = func(p search.Progress) {
			fmt.Fprintf(os.Stderr, "run=%s elapsed=%s searched=%d matched=%d batches=%d/%d\n",
				p.RunID, p.Elapsed.Truncate(time.Second), p.SeedsSearched, p.MatchesFound, p.BatchesDone, p.BatchesTotal)
		}
	}

	engine := search.New(search.Config{
		Compiled:   compiled,
		BatchChars: opts.batchSize,
		StartBatch: opts.startBatch,
		EndBatch:   endBatch,
		Threads:    opts.threads,
		Cutoff:     cut,
		Sink:       w.Sink,
		OnProgress: onProgress,
	})
	_ = opts.prefilter // not consulted: the engine always runs the prefilter, so --prefilter=false changes nothing

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Run(ctx); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

func pow35(exp int) uint64 {
	r := uint64(1)
	for i := 0; i < exp; i++ {
		r *= 35
	}
	return r
}

// csvWriter formats accepted results as CSV rows on the fly, serializing
// writes behind a single lock since multiple search workers share one
// resultsink.Sink (spec.md §5: "Console/report output is serialized with
// a single coarse lock").
type csvWriter struct {
	out        *os.File
	mu         chan struct{}
	wroteFirst bool
}

func newCSVWriter(out *os.File) *csvWriter {
	w := &csvWriter{out: out, mu: make(chan struct{}, 1)}
	w.mu <- struct{}{}
	return w
}

func (w *csvWriter) Sink(r resultsink.Result) {
	<-w.mu
	defer func() { w.mu <- struct{}{} }()

	if !w.wroteFirst {
		fmt.Fprintln(w.out, "seed,total_score,per_clause_counts")
		w.wroteFirst = true
	}
	counts := make([]byte, 0, len(r.PerClauseCounts)*4)
	for i, c := range r.PerClauseCounts {
		if i > 0 {
			counts = append(counts, ';')
		}
		counts = strconv.AppendInt(counts, int64(c), 10)
	}
	fmt.Fprintf(w.out, "%s,%d,%s\n", r.Seed, r.TotalScore, counts)
}

func (w *csvWriter) Flush() {}
