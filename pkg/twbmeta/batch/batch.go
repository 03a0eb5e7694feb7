// Package batch runs extraction over many workbook files in parallel.
//
// Each file is an independent unit of work: one parse allocates only its own
// tree and entity graph, so files fan out across a worker pool with no shared
// state. Failures are isolated per file; the batch always runs to completion.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/bpradana/weave"
	"github.com/google/uuid"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// Result is the outcome of extracting one workbook file.
type Result struct {
	// JobID identifies this unit of work within the run.
	JobID uuid.UUID
	// Path is the input file.
	Path string
	// Workbook is the extracted graph, nil when Err is set.
	Workbook *models.Workbook
	// Diagnostics are the recoverable conditions of this parse.
	Diagnostics []models.Diagnostic
	// Err is the fatal extraction error, if any.
	Err error
	// Duration is the wall time spent on this file.
	Duration time.Duration
}

// Run extracts every given workbook file, fanning the files out over a
// worker pool of the given size (GOMAXPROCS when zero). Results keep the
// input order. Per-file failures land in Result.Err; Run itself fails only
// when the task graph cannot be constructed or the context is cancelled.
func Run(ctx context.Context, paths []string, opts twbmeta.Options, workers int) ([]Result, error) {
	results := make([]Result, len(paths))

	graph := weave.NewGraph()
	for i, path := range paths {
		i, path := i, path
		name := fmt.Sprintf("extract-%d", i)
		_, err := weave.AddTask(graph, name, func(ctx context.Context, _ weave.DependencyResolver) (struct{}, error) {
			if err := ctx.Err(); err != nil {
				return struct{}{}, err
			}
			start := time.Now()
			wb, diags, err := twbmeta.ParseFile(path, opts)
			results[i] = Result{
				JobID:       uuid.New(),
				Path:        path,
				Workbook:    wb,
				Diagnostics: diags,
				Err:         err,
				Duration:    time.Since(start),
			}
			// The task itself succeeds even when the file fails, so the
			// rest of the batch keeps running.
			return struct{}{}, nil
		})
		if err != nil {
			return nil, fmt.Errorf("build batch graph: %w", err)
		}
	}

	dispatcher := weave.NewWorkerPoolDispatcher(workers)
	defer dispatcher.Stop()

	_, _, err := graph.Run(ctx,
		weave.WithErrorStrategy(weave.ContinueOnError),
		weave.WithDispatcher(dispatcher),
	)
	if err != nil {
		return nil, err
	}
	return results, nil
}
