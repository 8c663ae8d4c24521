package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TowerIdle_Go/internal/testing/leaktest"
	"github.com/osse101/TowerIdle_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
	Block    chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	if m.Block != nil {
		<-m.Block
	}
	return nil
}

func TestScheduler(t *testing.T) {
	// Create worker pool
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	// Create scheduler
	sched := New(pool)
	defer sched.Stop()

	// Create mock job
	job := &MockJob{
		Done: make(chan struct{}, 10),
	}

	// Schedule job every 10ms
	sched.Schedule("mock", 10*time.Millisecond, job)

	// Wait for at least 2 runs
	timeout := time.After(time.Second)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_NoOverlappingRuns(t *testing.T) {
	pool := worker.NewPool(4, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)

	job := &MockJob{
		Done:  make(chan struct{}, 1),
		Block: make(chan struct{}),
	}
	sched.Schedule("slow", 5*time.Millisecond, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for job execution")
	}
	// several ticks pass while the first run is blocked
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), job.RunCount.Load())

	sched.Stop()
	close(job.Block)
}

func TestScheduler_After(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.After("once", 10*time.Millisecond, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("Timeout waiting for one-shot job")
	}
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), job.RunCount.Load())
}

func TestScheduler_StopCancelsPendingAndLeaksNothing(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 10)
	pool.Start()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 1)}
	sched.After("later", time.Hour, job)
	sched.Schedule("tick", time.Hour, job)

	sched.Stop()
	sched.Stop()
	pool.Stop()

	assert.Zero(t, job.RunCount.Load())
	checker.Check(2)
}
