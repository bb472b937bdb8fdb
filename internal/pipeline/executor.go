// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelExecutor fans tasks out to goroutines, at most concurrency at a
// time, dispatching in index order.
type ParallelExecutor struct {
	concurrency int
}

func NewParallelExecutor(concurrency int) *ParallelExecutor {
	return &ParallelExecutor{concurrency: max(1, concurrency)}
}

func (e *ParallelExecutor) Concurrency() int { return e.concurrency }

func (e *ParallelExecutor) Execute(ctx context.Context, n int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	dispatched := 0
	for i := 0; i < n; i++ {
		// first failure cancels gctx; stop dispatching
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return task(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if dispatched < n {
		return ctx.Err()
	}
	return nil
}

// CooperativeExecutor runs tasks one after another on the calling goroutine
// and yields the processor between chunks.
type CooperativeExecutor struct{}

func NewCooperativeExecutor() *CooperativeExecutor {
	return &CooperativeExecutor{}
}

func (e *CooperativeExecutor) Concurrency() int { return 1 }

func (e *CooperativeExecutor) Execute(ctx context.Context, n int, task Task) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx, i); err != nil {
			return err
		}
		runtime.Gosched()
	}
	return nil
}

// NewExecutor picks the parallel executor when more than one chunk may run
// at once and the runtime can schedule goroutines on more than one thread,
// and the cooperative executor otherwise.
func NewExecutor(concurrency int) Executor {
	if concurrency <= 1 || runtime.GOMAXPROCS(0) < 2 {
		return NewCooperativeExecutor()
	}
	return NewParallelExecutor(concurrency)
}
