package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

// Job is the smallest useful unit: which owner's pending tasks to drain.
// Extend as needed later (trace, retry, priority, etc).
type Job struct {
	UserID      uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Dispatcher is the slice of the pipeline the queue needs.
type Dispatcher interface {
	ProcessNext(ctx context.Context, userID uuid.UUID) (*entity.DispatchOutcome, error)
}

type DispatchQueue struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	workers    int
	timeout    time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

type Option func(*DispatchQueue)

func WithWorkers(n int) Option {
	return func(q *DispatchQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *DispatchQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *DispatchQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDispatchQueue(dispatcher Dispatcher, logger *slog.Logger, opts ...Option) *DispatchQueue {
	q := &DispatchQueue{
		dispatcher: dispatcher,
		logger:     logger,
		workers:    4,
		timeout:    3 * time.Minute,
		ch:         make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DispatchQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					outcome, err := q.dispatcher.ProcessNext(ctx, job.UserID)
					cancel()

					switch {
					case err != nil:
						q.logger.Error("dispatch failed", "worker_id", workerID, "user_id", job.UserID, "error", err)
					case outcome.NoTask:
						q.logger.Info("no pending tasks", "worker_id", workerID, "user_id", job.UserID)
					case outcome.ErrorMessage != "":
						q.logger.Info("task failed", "worker_id", workerID, "task_id", outcome.TaskID, "message", outcome.ErrorMessage)
					default:
						q.logger.Info("task completed", "worker_id", workerID, "task_id", outcome.TaskID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue holds only a read lock so a blocking backpressure send cannot
// stall other producers; Shutdown takes the write lock before closing the
// channel, so no send can race a close.
func (q *DispatchQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "user_id", job.UserID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued dispatch", "user_id", job.UserID)
	default:
		q.logger.Warn("queue full, applying backpressure", "user_id", job.UserID)
		q.ch <- job
	}
	return nil
}

func (q *DispatchQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
