// Package taskqueue provides a channel-backed task queue for best-effort
// background work, such as pushing the expected delivery time to the
// marketplace after stock changes.
package taskqueue

import (
	"context"
	"log/slog"

	"frangodahora/internal/core/ports"
)

// ChannelTaskQueue buffers tasks in a channel and executes them one at a
// time on a single worker goroutine. Enqueue never blocks: when the buffer
// is full the task is dropped and logged, because queued work here is
// best-effort push traffic, not business state.
type ChannelTaskQueue struct {
	tasks  chan ports.Task
	logger *slog.Logger
}

// NewChannelTaskQueue creates a queue with the given buffer size.
func NewChannelTaskQueue(size int, logger *slog.Logger) *ChannelTaskQueue {
	return &ChannelTaskQueue{
		tasks:  make(chan ports.Task, size),
		logger: logger,
	}
}

// Enqueue submits a task for background execution.
func (q *ChannelTaskQueue) Enqueue(task ports.Task) {
	select {
	case q.tasks <- task:
	default:
		q.logger.Warn("task queue full, dropping task")
	}
}

// Run executes queued tasks until the context is cancelled. It should be
// called as a goroutine.
func (q *ChannelTaskQueue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case task := <-q.tasks:
			if err := task(ctx); err != nil {
				q.logger.Error("background task failed", "error", err)
			}
		}
	}
}
