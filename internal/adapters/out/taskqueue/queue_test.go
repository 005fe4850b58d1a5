package taskqueue_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"frangodahora/internal/adapters/out/taskqueue"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChannelTaskQueue_ExecutesEnqueuedTasks(t *testing.T) {
	queue := taskqueue.NewChannelTaskQueue(8, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Run(ctx)

	ran := make(chan struct{})
	queue.Enqueue(func(context.Context) error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task was never executed")
	}
}

func TestChannelTaskQueue_FailingTaskDoesNotStopWorker(t *testing.T) {
	queue := taskqueue.NewChannelTaskQueue(8, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Run(ctx)

	queue.Enqueue(func(context.Context) error {
		return errors.New("push failed")
	})

	ran := make(chan struct{})
	queue.Enqueue(func(context.Context) error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a failing task")
	}
}

func TestChannelTaskQueue_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	// No worker running: the buffer fills and further tasks are dropped.
	queue := taskqueue.NewChannelTaskQueue(1, discardLogger())

	done := make(chan struct{})
	go func() {
		for range 10 {
			queue.Enqueue(func(context.Context) error { return nil })
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full buffer")
	}
}
