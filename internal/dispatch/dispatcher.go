// Package dispatch serializes concurrent transcription requests onto a
// single worker goroutine that owns the loaded model. The bounded job
// queue is the only communication path into that goroutine; admission
// is decided synchronously at submit time and overload is reported to
// the caller instead of buffered.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/obiente/scribed/internal/engine"
)

var (
	// ErrQueueFull means the job queue is at capacity. Callers may
	// retry with backoff.
	ErrQueueFull = errors.New("transcription queue is full")
	// ErrWorkerUnavailable means the worker has shut down, or stopped
	// before answering a submitted job.
	ErrWorkerUnavailable = errors.New("transcription worker unavailable")
)

// TranscriptionError reports an engine failure for a single job. It
// never affects the worker or any other job.
type TranscriptionError struct {
	Detail string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %s", e.Detail)
}

type result struct {
	text string
	err  error
}

// job pairs one audio payload with its private reply channel. The
// reply channel is buffered so the worker's send never blocks and a
// write after the submitter gave up is simply never read.
type job struct {
	samples []float32
	reply   chan result
}

// Dispatcher owns the bounded FIFO job queue. Any number of goroutines
// may call Submit concurrently; the single worker goroutine is the
// sole consumer.
type Dispatcher struct {
	jobs    chan job
	stopped chan struct{}

	mu     sync.RWMutex
	closed bool
}

// New starts the worker goroutine and returns a serving dispatcher.
// The worker warms the engine up on a silent chunk before taking jobs;
// a warm-up failure is logged and ignored.
func New(eng engine.Engine, queueCapacity int) *Dispatcher {
	if queueCapacity <= 0 {
		queueCapacity = 1
	}
	d := &Dispatcher{
		jobs:    make(chan job, queueCapacity),
		stopped: make(chan struct{}),
	}
	go d.work(eng)
	return d
}

// Submit enqueues audio for transcription and waits for the outcome.
// The enqueue itself never blocks: a full queue fails immediately with
// ErrQueueFull, a closed dispatcher with ErrWorkerUnavailable.
// Cancelling ctx abandons the wait; the job still runs to completion
// and its result is discarded.
func (d *Dispatcher) Submit(ctx context.Context, samples []float32) (string, error) {
	j := job{samples: samples, reply: make(chan result, 1)}

	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return "", ErrWorkerUnavailable
	}
	select {
	case d.jobs <- j:
		d.mu.RUnlock()
	default:
		d.mu.RUnlock()
		return "", ErrQueueFull
	}

	select {
	case r := <-j.reply:
		return r.text, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	case <-d.stopped:
		// The worker may have answered just before exiting.
		select {
		case r := <-j.reply:
			return r.text, r.err
		default:
			return "", ErrWorkerUnavailable
		}
	}
}

// Close stops admission, closes the queue and waits until the worker
// has drained it. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.stopped
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()
	<-d.stopped
}
