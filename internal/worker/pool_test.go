package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countResult struct{ err error }

func (r *countResult) Err() error { return r.err }

type countJob struct{ counter *int64 }

func (j *countJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var counter int64
	for i := 0; i < 10; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()

	if len(results) != 10 {
		t.Errorf("Expected 10 results, got %d", len(results))
	}
	if got := atomic.LoadInt64(&counter); got != 10 {
		t.Errorf("Expected all jobs executed, counter is %d", got)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&countJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

func TestPool_WaitWithNoJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	if results := pool.Wait(); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
