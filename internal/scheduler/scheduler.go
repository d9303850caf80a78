// Package scheduler enqueues recurring jobs onto the worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/worker"
)

// Enqueuer is the part of the worker pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool     Enqueuer
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. The first run happens
// after one interval. A tick is skipped when the pool queue is full.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	logger.FromContext(context.Background()).Info("Job scheduled", "job", job.Name(), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.pool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
