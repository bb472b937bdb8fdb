// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// fifo is a bounded map that evicts the oldest inserted entry. Lookups go
// through Peek, so the LRU order stays the insertion order. It is not safe
// for concurrent use; the exported caches hold the lock.
type fifo[V any] struct {
	items *simplelru.LRU[string, entry[V]]
}

func newFIFO[V any](capacity int) (*fifo[V], error) {
	items, err := simplelru.NewLRU[string, entry[V]](capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cache of %d entries: %w", capacity, err)
	}
	return &fifo[V]{items: items}, nil
}

func (f *fifo[V]) get(key string) (entry[V], bool) {
	return f.items.Peek(key)
}

// put stores value under key. Re-inserting a key counts as a fresh
// insertion and moves it to the back of the queue.
func (f *fifo[V]) put(key string, value V, now time.Time) {
	f.items.Add(key, entry[V]{value: value, insertedAt: now})
}

func (f *fifo[V]) delete(key string) {
	f.items.Remove(key)
}

// removeOlderThan drops every entry inserted at or before cutoff. Insertion
// times grow along the queue, so the scan stops at the first young entry.
func (f *fifo[V]) removeOlderThan(cutoff time.Time) int {
	removed := 0
	for {
		_, e, ok := f.items.GetOldest()
		if !ok || e.insertedAt.After(cutoff) {
			return removed
		}
		f.items.RemoveOldest()
		removed++
	}
}

func (f *fifo[V]) len() int {
	return f.items.Len()
}

func (f *fifo[V]) clear() {
	f.items.Purge()
}
