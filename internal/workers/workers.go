package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/enigmora/lnxdrive-shell/internal/logger"
)

type named struct {
	name   string
	worker Worker
}

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []named
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. It must be called before Run.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.workers = append(w.workers, named{name: name, worker: worker})
	return w
}

// Run starts every worker and blocks until all of them returned. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, n := range w.workers {
		g.Go(func() error {
			w.logger.Debug().Str("worker", n.name).Msg("worker started")
			defer w.logger.Debug().Str("worker", n.name).Msg("worker stopped")

			if err := n.worker.Run(gctx); err != nil {
				return fmt.Errorf("worker %s: %w", n.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}
