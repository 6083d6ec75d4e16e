package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	if j.fail {
		return &countResult{err: context.Canceled}
	}
	return &countResult{}
}

func TestPoolRunsEveryJob(t *testing.T) {
	var counter int64
	pool := NewPool(4)
	pool.Start()

	const jobs = 20
	for i := 0; i < jobs; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != jobs {
		t.Errorf("got %d results, want %d", len(results), jobs)
	}
	if atomic.LoadInt64(&counter) != jobs {
		t.Errorf("executed %d jobs, want %d", counter, jobs)
	}
}

func TestPoolPropagatesJobErrors(t *testing.T) {
	var counter int64
	pool := NewPool(2)
	pool.Start()

	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, fail: true})

	failed := 0
	for _, result := range pool.Wait() {
		if result.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestPoolMinimumOneWorker(t *testing.T) {
	var counter int64
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
}

func TestPoolShutdownStopsAcceptingWork(t *testing.T) {
	var counter int64
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Dropped silently after shutdown.
	pool.Submit(&countJob{counter: &counter})
	if atomic.LoadInt64(&counter) != 0 {
		t.Errorf("job ran after shutdown")
	}
}
