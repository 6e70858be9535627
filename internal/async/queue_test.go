package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

type recordingDispatcher struct {
	mu    sync.Mutex
	users []uuid.UUID
	done  chan struct{}
	want  int
}

func (d *recordingDispatcher) ProcessNext(_ context.Context, userID uuid.UUID) (*entity.DispatchOutcome, error) {
	d.mu.Lock()
	d.users = append(d.users, userID)
	n := len(d.users)
	d.mu.Unlock()
	if n == d.want {
		close(d.done)
	}
	return &entity.DispatchOutcome{NoTask: true}, nil
}

func TestDispatchQueueProcessesJobs(t *testing.T) {
	disp := &recordingDispatcher{done: make(chan struct{}), want: 3}
	q := NewDispatchQueue(disp, slog.Default(), WithWorkers(2), WithQueueSize(8))
	defer q.Shutdown(context.Background())

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{UserID: uuid.New(), SubmittedAt: time.Now()}); err != nil {
			t.Fatalf("Enqueue returned error: %v", err)
		}
	}

	select {
	case <-disp.done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs were not processed in time")
	}
}

type gatedDispatcher struct {
	gate chan struct{}
	recordingDispatcher
}

func (d *gatedDispatcher) ProcessNext(ctx context.Context, userID uuid.UUID) (*entity.DispatchOutcome, error) {
	<-d.gate
	return d.recordingDispatcher.ProcessNext(ctx, userID)
}

// A producer blocked in the backpressure send must not hold up Shutdown
// forever: once a worker frees a slot the producer finishes, Shutdown
// closes the channel, and every accepted job is still processed.
func TestDispatchQueueShutdownWithBlockedProducer(t *testing.T) {
	disp := &gatedDispatcher{
		gate:                make(chan struct{}),
		recordingDispatcher: recordingDispatcher{done: make(chan struct{}), want: 3},
	}
	q := NewDispatchQueue(disp, slog.Default(), WithWorkers(1), WithQueueSize(1))

	// first job parks in the worker on the gate, second fills the buffer
	_ = q.Enqueue(context.Background(), Job{UserID: uuid.New()})
	_ = q.Enqueue(context.Background(), Job{UserID: uuid.New()})

	// third producer blocks in the backpressure send
	sent := make(chan struct{})
	go func() {
		defer close(sent)
		_ = q.Enqueue(context.Background(), Job{UserID: uuid.New()})
	}()
	select {
	case <-sent:
		t.Fatal("third enqueue should block while the queue is full")
	case <-time.After(100 * time.Millisecond):
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		q.Shutdown(context.Background())
	}()

	close(disp.gate)

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete with a producer blocked on a full queue")
	}
	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("blocked producer never returned")
	}

	disp.mu.Lock()
	processed := len(disp.users)
	disp.mu.Unlock()
	if processed != 3 {
		t.Errorf("processed %d jobs, want all 3 accepted before shutdown", processed)
	}
}

func TestDispatchQueueShutdownDrains(t *testing.T) {
	disp := &recordingDispatcher{done: make(chan struct{}), want: 5}
	q := NewDispatchQueue(disp, slog.Default(), WithWorkers(1), WithQueueSize(16))

	for i := 0; i < 5; i++ {
		_ = q.Enqueue(context.Background(), Job{UserID: uuid.New()})
	}
	q.Shutdown(context.Background())

	disp.mu.Lock()
	processed := len(disp.users)
	disp.mu.Unlock()
	if processed != 5 {
		t.Errorf("processed %d jobs before shutdown completed, want 5", processed)
	}

	// enqueue after shutdown is a logged no-op, not a panic
	if err := q.Enqueue(context.Background(), Job{UserID: uuid.New()}); err != nil {
		t.Errorf("Enqueue after shutdown returned error: %v", err)
	}
}
