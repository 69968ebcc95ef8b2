// Package jobs runs push events through the build trigger rules on a pool of
// background workers.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sevigo/stashbot/internal/core"
)

// ErrQueueFull is returned by Dispatch when no worker can take the event.
var ErrQueueFull = errors.New("job queue is full")

// Dispatcher implements core.JobDispatcher and manages a pool of worker
// goroutines. Events are handled off the caller's goroutine, in no
// particular order across repositories.
type Dispatcher struct {
	job        core.Job
	jobQueue   chan *core.PushEvent
	maxWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	logger     *slog.Logger
}

// NewDispatcher initializes a dispatcher with a worker pool.
// If maxWorkers is 0 or negative, it defaults to 1.
func NewDispatcher(job core.Job, maxWorkers, queueSize int, logger *slog.Logger) *Dispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 100
	}
	d := &Dispatcher{
		job:        job,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan *core.PushEvent, queueSize),
		logger:     logger,
	}
	d.startWorkers()
	return d
}

var _ core.JobDispatcher = (*Dispatcher)(nil)

func (d *Dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

func (d *Dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Debug("starting push worker", "id", workerID)

	for event := range d.jobQueue {
		d.processEvent(workerID, event)
	}

	d.logger.Debug("shutting down push worker", "id", workerID)
}

// processEvent runs the job for one push. A failing job is logged and never
// reaches the host that delivered the push.
func (d *Dispatcher) processEvent(workerID int, event *core.PushEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("push job panicked", "worker_id", workerID, "repo", event.Repository.String(), "panic", r)
		}
	}()

	d.logger.Debug("worker processing push", "worker_id", workerID, "repo", event.Repository.String())

	if err := d.job.Run(context.Background(), event); err != nil {
		d.logger.Error("push job failed",
			"repo", event.Repository.String(),
			"error", err,
		)
	}
}

// Dispatch queues a push event for processing by a worker.
func (d *Dispatcher) Dispatch(_ context.Context, event *core.PushEvent) error {
	d.logger.Debug("queuing push", "repo", event.Repository.String(), "refs", len(event.RefChanges))

	select {
	case d.jobQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for queued events to finish.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.logger.Info("stopping dispatcher and waiting for jobs to finish")
		close(d.jobQueue)
		d.wg.Wait()
		d.logger.Info("all push jobs have finished")
	})
}
