// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"sync"
)

// reassembler hands chunk outputs to emit in strict index order, whatever
// order they complete in. A chunk may only start once its index is within
// window of the next index to emit, which bounds the buffered outputs.
type reassembler struct {
	mu       sync.Mutex
	next     int
	window   int
	pending  map[int][]byte
	advanced chan struct{}
	emit     func(i int, out []byte) error
}

func newReassembler(window int, emit func(i int, out []byte) error) *reassembler {
	return &reassembler{
		window:   max(1, window),
		pending:  make(map[int][]byte),
		advanced: make(chan struct{}),
		emit:     emit,
	}
}

// admit blocks until chunk i may start.
func (r *reassembler) admit(ctx context.Context, i int) error {
	for {
		r.mu.Lock()
		if i < r.next+r.window {
			r.mu.Unlock()
			return nil
		}
		ch := r.advanced
		r.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// complete records the output of chunk i and emits every output that is now
// contiguous with what was emitted before.
func (r *reassembler) complete(i int, out []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[i] = out
	advanced := false
	for {
		o, ok := r.pending[r.next]
		if !ok {
			break
		}
		delete(r.pending, r.next)
		if err := r.emit(r.next, o); err != nil {
			return err
		}
		r.next++
		advanced = true
	}

	if advanced {
		close(r.advanced)
		r.advanced = make(chan struct{})
	}
	return nil
}

// emitted returns the number of chunks handed to emit so far.
func (r *reassembler) emitted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// buffered returns the number of completed chunks waiting for a predecessor.
func (r *reassembler) buffered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
