// Package runner drives extraction over whole collections. Within one
// collection, chunks are processed strictly sequentially in ascending chunk
// id order: the carry state is a sequential fold with a hard data dependency
// between consecutive chunks. Different collections are fully independent
// and run concurrently on a fixed worker pool.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/hadithlab/rawi/internal/chunkstore"
	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/extract"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/types"
)

// Runner executes collection extraction runs.
type Runner struct {
	home    *home.Dir
	cfgMgr  *config.Manager
	logger  *slog.Logger
	workers int
}

// New creates a runner. Worker count comes from the config defaults; a
// non-positive value falls back to 1.
func New(h *home.Dir, cfgMgr *config.Manager, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfgMgr.Get().Defaults.MaxWorkers
	if workers <= 0 {
		workers = 1
	}
	return &Runner{
		home:    h,
		cfgMgr:  cfgMgr,
		logger:  logger.With("component", "runner"),
		workers: workers,
	}
}

// CollectionReport summarizes one collection run.
type CollectionReport struct {
	Collection  string             `json:"collection"`
	RunID       string             `json:"runId"`
	Chunks      int                `json:"chunks"`
	LastHeading types.Heading      `json:"lastHeading"`
	Stats       types.QualityStats `json:"stats"`
	Error       string             `json:"error,omitempty"`
}

// RunCollection extracts every chunk of one collection in order, writing
// each chunk's output as it completes. Malformed chunk input is fatal for
// the run: the computation is deterministic, so retrying cannot change the
// outcome.
func (r *Runner) RunCollection(ctx context.Context, name string) (*CollectionReport, error) {
	report := &CollectionReport{
		Collection: name,
		RunID:      uuid.NewString(),
	}
	logger := r.logger.With("collection", name, "run_id", report.RunID)

	colCfg, ok := r.cfgMgr.Get().GetCollection(name)
	if !ok {
		return report, fmt.Errorf("collection %q not configured", name)
	}

	store, err := chunkstore.New(r.home.ChunksDir(name))
	if err != nil {
		return report, err
	}

	engine, err := extract.New(colCfg.Profile(), logger)
	if err != nil {
		return report, err
	}

	ids, err := store.List()
	if err != nil {
		return report, err
	}
	logger.Info("starting extraction", "chunks", len(ids))

	var carry types.CarryState
	for _, id := range ids {
		// The engine itself has no suspension points; honor cancellation
		// between chunks.
		if err := ctx.Err(); err != nil {
			return report, err
		}

		chunk, err := store.ReadChunk(id)
		if err != nil {
			return report, err
		}

		out, next, err := engine.ProcessChunk(chunk, carry)
		if err != nil {
			return report, fmt.Errorf("chunk %d: %w", id, err)
		}
		if err := store.WriteExtracted(out); err != nil {
			return report, err
		}

		carry = next
		report.Chunks++
		report.Stats.Add(extract.Stats(out.Units))
		report.LastHeading = out.LastHeading
	}

	logger.Info("extraction complete",
		"chunks", report.Chunks,
		"units", report.Stats.Units,
		"empty_heading", report.Stats.EmptyHeading,
		"empty_content", report.Stats.EmptyContent,
		"cross_refs", report.Stats.CrossReferences,
		"footnoted", report.Stats.Footnoted,
	)
	return report, nil
}

// RunAll extracts the named collections concurrently on the worker pool.
// Each collection still folds its own chunks sequentially. Per-collection
// failures land in the report's Error field instead of aborting the batch.
func (r *Runner) RunAll(ctx context.Context, names []string) []*CollectionReport {
	reports := make([]*CollectionReport, len(names))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := r.workers
	if workers > len(names) {
		workers = len(names)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := r.RunCollection(ctx, names[i])
				if err != nil {
					report.Error = err.Error()
					r.logger.Error("collection run failed", "collection", names[i], "error", err)
				}
				reports[i] = report
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return reports
}
