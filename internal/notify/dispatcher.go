// Package notify delivers SMS notifications asynchronously so HTTP handlers
// never block on the gateway. A fixed pool of workers drains a bounded queue;
// a full queue rejects the submission rather than stalling the caller.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Job is one SMS to deliver.
type Job struct {
	Phone   string
	Message string
}

// Sender is the delivery backend (the SMS gateway client in production).
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// Dispatcher fans jobs out to a pool of delivery workers.
type Dispatcher struct {
	sender      Sender
	jobs        chan Job
	workers     int
	sendTimeout time.Duration
	wg          sync.WaitGroup
	log         *logrus.Logger
}

// NewDispatcher creates a dispatcher with the given worker count and queue size.
func NewDispatcher(sender Sender, workers, queueSize int, log *logrus.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		sender:      sender,
		jobs:        make(chan Job, queueSize),
		workers:     workers,
		sendTimeout: 15 * time.Second,
		log:         log,
	}
}

// Run starts the worker pool. Call Stop to drain and shut it down.
func (d *Dispatcher) Run() {
	for i := 1; i <= d.workers; i++ {
		d.wg.Add(1)
		go d.work(i)
	}
	d.log.WithField("workers", d.workers).Info("SMS dispatcher running")
}

func (d *Dispatcher) work(id int) {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		err := d.sender.Send(ctx, job.Phone, job.Message)
		cancel()
		if err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"worker":   id,
				"receiver": job.Phone,
			}).Error("SMS delivery failed")
			continue
		}
		d.log.WithFields(logrus.Fields{"worker": id, "receiver": job.Phone}).Debug("SMS delivery finished")
	}
}

// Submit queues a job without blocking. It reports false when the queue is
// full; the caller decides whether that is worth surfacing.
func (d *Dispatcher) Submit(job Job) bool {
	select {
	case d.jobs <- job:
		return true
	default:
		d.log.WithField("receiver", job.Phone).Warn("SMS queue full, notification dropped")
		return false
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
	d.log.Info("SMS dispatcher stopped")
}
