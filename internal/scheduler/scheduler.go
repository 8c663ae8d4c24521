// Package scheduler enqueues jobs onto a worker pool at fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/TowerIdle_Go/internal/logger"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A run is skipped while
// the previous run of the same job is still queued or executing, and when the
// worker queue is full.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	sj := &scheduledJob{name: name, job: job}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.fire(sj)
			case <-s.quit:
				return
			}
		}
	}()
}

// After runs job once after d unless the scheduler is stopped first
func (s *Scheduler) After(name string, d time.Duration, job worker.Job) {
	sj := &scheduledJob{name: name, job: job}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			s.fire(sj)
		case <-s.quit:
		}
	}()
}

func (s *Scheduler) fire(sj *scheduledJob) {
	if !sj.running.CompareAndSwap(false, true) {
		return
	}
	if !s.workerPool.TryEnqueue(sj) {
		sj.running.Store(false)
		logger.FromContext(context.Background()).Debug(LogMsgJobSkippedQueueFull, "job", sj.name)
	}
}

// Stop stops all scheduled jobs. Jobs already handed to the pool still run.
// Stop is idempotent.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}

// scheduledJob wraps a job so at most one run is outstanding at a time
type scheduledJob struct {
	name    string
	job     worker.Job
	running atomic.Bool
}

func (j *scheduledJob) Process(ctx context.Context) error {
	defer j.running.Store(false)
	return j.job.Process(ctx)
}
