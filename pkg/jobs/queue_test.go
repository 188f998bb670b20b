package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultRecorder struct {
	mu      sync.Mutex
	results []bool
	done    chan struct{}
}

func (r *resultRecorder) hook(job Job, err error, final bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, err == nil)
	if final {
		close(r.done)
	}
}

func TestQueueProcessesJob(t *testing.T) {
	rec := &resultRecorder{done: make(chan struct{})}
	var handled string
	q := NewQueue("schedules", func(ctx context.Context, job Job) error {
		handled = job.ID
		return nil
	}, QueueConfig{Workers: 1, OnResult: rec.hook})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-1", Type: "day_schedule"}))

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed")
	}
	assert.Equal(t, "job-1", handled)
	assert.Equal(t, []bool{true}, rec.results)
}

func TestQueueRetriesUntilSuccess(t *testing.T) {
	rec := &resultRecorder{done: make(chan struct{})}
	var mu sync.Mutex
	calls := 0
	q := NewQueue("schedules", func(ctx context.Context, job Job) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 2 {
			return errors.New("catalog offline")
		}
		return nil
	}, QueueConfig{Workers: 1, MaxRetries: 2, RetryDelay: 10 * time.Millisecond, OnResult: rec.hook})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-2"}))

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not retried")
	}
	assert.Equal(t, []bool{false, true}, rec.results)
}

func TestQueueGivesUpAfterMaxRetries(t *testing.T) {
	rec := &resultRecorder{done: make(chan struct{})}
	q := NewQueue("schedules", func(ctx context.Context, job Job) error {
		return errors.New("profile unreadable")
	}, QueueConfig{Workers: 1, MaxRetries: 1, RetryDelay: 10 * time.Millisecond, OnResult: rec.hook})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-3"}))

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never reached a final result")
	}
	assert.Equal(t, []bool{false, false}, rec.results)
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("schedules", func(ctx context.Context, job Job) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Job{ID: "early"}))
}

func TestQueueRecoversPanickingHandler(t *testing.T) {
	rec := &resultRecorder{done: make(chan struct{})}
	q := NewQueue("schedules", func(ctx context.Context, job Job) error {
		panic("nil profile")
	}, QueueConfig{Workers: 1, MaxRetries: 0, OnResult: rec.hook})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "job-4"}))

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("panicking job never reported")
	}
	assert.Equal(t, []bool{false}, rec.results)
}

func TestQueueDepth(t *testing.T) {
	release := make(chan struct{})
	q := NewQueue("schedules", func(ctx context.Context, job Job) error {
		<-release
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 4})
	q.Start(context.Background())
	defer q.Stop()
	defer close(release)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.Enqueue(Job{ID: id}))
	}
	require.Eventually(t, func() bool { return q.Depth() == 2 }, time.Second, 5*time.Millisecond)
}

func TestQueueBackoffGrowsWithAttempts(t *testing.T) {
	q := NewQueue("schedules", nil, QueueConfig{RetryDelay: 100 * time.Millisecond})

	assert.Equal(t, 100*time.Millisecond, q.backoff(0))
	assert.Equal(t, 100*time.Millisecond, q.backoff(1))
	assert.Equal(t, 300*time.Millisecond, q.backoff(3))
	assert.Equal(t, 500*time.Millisecond, q.backoff(maxBackoffSteps+4))
}
