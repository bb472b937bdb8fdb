package pipeline

//go:generate mockgen -source=interfaces.go -destination=../mock/pipeline_mock.go -package=mock

import "context"

// Runner executes one encrypt or decrypt pipeline run.
type Runner interface {
	// Run partitions req.Source into chunks, seals or opens them with a
	// bounded number of concurrent codec calls and writes the output to
	// req.Sink in strict chunk order. On failure nothing usable is left in
	// the sink and the error wraps one of the models.Err* sentinels.
	Run(ctx context.Context, req Request) (*Result, error)
}

// Task processes chunk i. It must honor ctx.
type Task func(ctx context.Context, i int) error

// Executor drives tasks 0..n-1 with at most Concurrency running at once.
type Executor interface {
	// Execute returns the first task error. No new task is started after a
	// failure or once ctx is done; tasks already running may finish.
	Execute(ctx context.Context, n int, task Task) error
	Concurrency() int
}
