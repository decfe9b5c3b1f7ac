package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

// blockingJob holds its worker until the context is cancelled
type blockingJob struct {
	started chan struct{}
	once    sync.Once
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	j.once.Do(func() { close(j.started) })
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))

	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	blocker := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	<-blocker.started

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}), "one slot in the queue")
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "queue is full")
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	blocker := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(blocker))
	<-blocker.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
	pool.Stop()
}
