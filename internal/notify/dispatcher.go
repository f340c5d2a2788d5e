// Package notify delivers notifications in the background so that callers
// never wait on the notification store.
package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Job is one notification waiting to be delivered.
type Job struct {
	RecipientID string
	Message     string
}

// Sink persists a notification.
type Sink interface {
	Deliver(ctx context.Context, job Job) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, job Job) error

func (f SinkFunc) Deliver(ctx context.Context, job Job) error { return f(ctx, job) }

// Options tune a Dispatcher. Zero values fall back to the defaults.
type Options struct {
	QueueSize int
	Workers   int
	Grace     time.Duration
}

// Defaults.
const (
	DefaultQueueSize = 256
	DefaultWorkers   = 1
	DefaultGrace     = time.Second
)

// Dispatcher is a bounded queue drained by a fixed set of workers.
// Submission never blocks: a full queue or a stopped dispatcher drops
// the job. There is no retry and no ordering guarantee.
type Dispatcher struct {
	sink    Sink
	log     *zap.Logger
	metrics *Metrics
	grace   time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Job

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	dropped atomic.Int64
}

// New starts a dispatcher delivering to sink.
func New(sink Sink, opts Options, log *zap.Logger, metrics *Metrics) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Grace <= 0 {
		opts.Grace = DefaultGrace
	}
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		sink:    sink,
		log:     log.Named("notify"),
		metrics: metrics,
		grace:   opts.Grace,
		queue:   make(chan Job, opts.QueueSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	d.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go d.work()
	}
	return d
}

// Notify queues a message for recipientID and reports whether it was accepted.
func (d *Dispatcher) Notify(recipientID, message string) bool {
	job := Job{RecipientID: recipientID, Message: message}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(job, "dispatcher stopped")
		return false
	}

	d.metrics.QueueDepth.Inc()
	select {
	case d.queue <- job:
		d.metrics.Outcomes.WithLabelValues(outcomeQueued).Inc()
		return true
	default:
		d.metrics.QueueDepth.Dec()
		d.drop(job, "queue full")
		return false
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for job := range d.queue {
		d.metrics.QueueDepth.Dec()

		if d.ctx.Err() != nil {
			d.drop(job, "shutdown grace expired")
			continue
		}

		if err := d.sink.Deliver(d.ctx, job); err != nil {
			d.metrics.Outcomes.WithLabelValues(outcomeFailed).Inc()
			d.log.Error("notification delivery failed",
				zap.String("recipient", job.RecipientID),
				zap.Error(err),
			)
			continue
		}
		d.metrics.Outcomes.WithLabelValues(outcomeDelivered).Inc()
	}
}

func (d *Dispatcher) drop(job Job, reason string) {
	d.dropped.Add(1)
	d.metrics.Outcomes.WithLabelValues(outcomeDropped).Inc()
	d.log.Warn("notification dropped",
		zap.String("recipient", job.RecipientID),
		zap.String("reason", reason),
	)
}

// Shutdown stops accepting jobs and waits up to the grace period (or until
// ctx is done) for queued jobs to be delivered. Whatever is still queued
// after that is dropped. It returns the number of jobs dropped over the
// dispatcher's lifetime. Calling Shutdown more than once is safe.
func (d *Dispatcher) Shutdown(ctx context.Context) int {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(d.grace)
	defer timer.Stop()

	select {
	case <-done:
	case <-timer.C:
		d.log.Warn("notification queue not drained within grace period", zap.Duration("grace", d.grace))
	case <-ctx.Done():
	}

	d.cancel()
	<-done
	return int(d.dropped.Load())
}
