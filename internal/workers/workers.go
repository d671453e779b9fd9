package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-zk-drive/internal/config"
	"github.com/MKhiriev/go-zk-drive/internal/logger"
	"github.com/MKhiriev/go-zk-drive/internal/utils"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one task.
type Result struct {
	// ID correlates the task's log entries.
	ID       string
	Name     string
	Err      error
	Duration time.Duration
}

// TransferPool runs tasks with at most size of them in flight.
type TransferPool struct {
	size   int
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewTransferPool builds a pool bounded by cfg.TransferConcurrency; values
// below one run tasks one at a time.
func NewTransferPool(cfg config.ClientWorkers, logger *logger.Logger) *TransferPool {
	return &TransferPool{
		size:   max(cfg.TransferConcurrency, 1),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// Run executes every task and returns their results in input order. A
// failing task does not stop the others; a cancelled ctx makes tasks that
// have not started yet fail with ctx.Err().
func (p *TransferPool) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))

	var g errgroup.Group
	g.SetLimit(p.size)

	for i, task := range tasks {
		id := p.ids.Generate()
		results[i] = Result{ID: id, Name: task.Name()}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}

			log := p.logger.WithOperation("transfer", id)
			taskCtx := log.WithContext(utils.WithRequestID(ctx, id))

			start := time.Now()
			err := task.Run(taskCtx)
			results[i].Err = err
			results[i].Duration = time.Since(start)

			if err != nil {
				log.Err(err).Str("task", task.Name()).Msg("task failed")
			} else {
				log.Debug().Str("task", task.Name()).Dur("took", results[i].Duration).Msg("task done")
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
