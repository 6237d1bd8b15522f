// Package worker runs background tasks on a fixed pool of goroutines fed
// by a bounded queue.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"stellar-ads/internal/core/port"
)

var _ port.TaskQueue = (*Dispatcher)(nil)

// TaskError is published on the error channel when a task fails.
type TaskError struct {
	Name string
	Err  error
}

func (e TaskError) Error() string { return fmt.Sprintf("task %s: %v", e.Name, e.Err) }

func (e TaskError) Unwrap() error { return e.Err }

type job struct {
	name string
	task port.Task
}

// Dispatcher executes submitted tasks with a per-task timeout. Failures
// never propagate to the submitter; they are sent on Errors, dropping
// the oldest report when nobody reads them.
type Dispatcher struct {
	log     *slog.Logger
	workers int
	timeout time.Duration
	queue   chan job
	errs    chan TaskError

	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(log *slog.Logger, workers, queueSize int, timeout time.Duration) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		log:     log,
		workers: workers,
		timeout: timeout,
		queue:   make(chan job, queueSize),
		errs:    make(chan TaskError, queueSize),
	}
}

// Submit enqueues the task without blocking. It returns ErrQueueFull when
// the queue is at capacity and after Run has returned.
func (d *Dispatcher) Submit(name string, task port.Task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return fmt.Errorf("submit %s: %w: dispatcher stopped", name, port.ErrQueueFull)
	}
	select {
	case d.queue <- job{name: name, task: task}:
		return nil
	default:
		return fmt.Errorf("submit %s: %w", name, port.ErrQueueFull)
	}
}

// Errors returns the channel task failures are published on.
func (d *Dispatcher) Errors() <-chan TaskError {
	return d.errs
}

// Run starts the workers and blocks until ctx is cancelled. Tasks still
// queued at that point are executed before Run returns, each with a
// fresh context bounded by the task timeout.
func (d *Dispatcher) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < d.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case j := <-d.queue:
					d.execute(j)
				case <-gctx.Done():
					return nil
				}
			}
		})
	}
	err := g.Wait()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	// drain what was accepted before shutdown
	for {
		select {
		case j := <-d.queue:
			d.execute(j)
		default:
			return err
		}
	}
}

func (d *Dispatcher) execute(j job) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return j.task(ctx)
	}()
	if err == nil {
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		d.log.Warn("background task timed out", slog.String("task", j.name), slog.Duration("timeout", d.timeout))
	}
	d.publish(TaskError{Name: j.name, Err: err})
}

func (d *Dispatcher) publish(te TaskError) {
	for {
		select {
		case d.errs <- te:
			return
		default:
		}
		select {
		case <-d.errs:
		default:
		}
	}
}
