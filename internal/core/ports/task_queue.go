package ports

import "context"

// Task is one unit of asynchronous outbound work.
type Task func(ctx context.Context) error

// TaskQueue runs outbound side effects, such as pushing settings to the
// marketplace, outside the request that triggered them. Enqueue never
// blocks the caller; failed tasks are logged by the worker, not retried.
type TaskQueue interface {
	Enqueue(task Task)
}
