// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"bytes"
	"sync"
	"time"
)

// RawCache keeps raw source bytes by source identity. Entries older than
// the TTL are treated as absent and removed when looked up. Once the
// number of lookups since the last sweep exceeds the sweep threshold, the
// lookup also drops every other expired entry.
type RawCache struct {
	mu             sync.Mutex
	items          *fifo[[]byte]
	ttl            time.Duration
	sweepThreshold int
	accesses       int
	now            func() time.Time
}

func newRawCache(capacity int, ttl time.Duration, sweepThreshold int, now func() time.Time) (*RawCache, error) {
	items, err := newFIFO[[]byte](capacity)
	if err != nil {
		return nil, err
	}
	return &RawCache{
		items:          items,
		ttl:            ttl,
		sweepThreshold: sweepThreshold,
		now:            now,
	}, nil
}

// Get returns the bytes stored for sourceID. The returned slice must not be
// modified.
func (c *RawCache) Get(sourceID string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	c.accesses++
	if c.sweepThreshold > 0 && c.accesses > c.sweepThreshold {
		c.sweepLocked(now)
	}

	e, ok := c.items.get(sourceID)
	if !ok {
		return nil, false
	}
	if c.expired(e.insertedAt, now) {
		c.items.delete(sourceID)
		return nil, false
	}
	return e.value, true
}

// Put stores a copy of data.
func (c *RawCache) Put(sourceID string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items.put(sourceID, bytes.Clone(data), c.now())
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *RawCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(c.now())
}

func (c *RawCache) sweepLocked(now time.Time) int {
	c.accesses = 0
	if c.ttl <= 0 {
		return 0
	}
	return c.items.removeOlderThan(now.Add(-c.ttl))
}

func (c *RawCache) expired(insertedAt, now time.Time) bool {
	return c.ttl > 0 && !now.Before(insertedAt.Add(c.ttl))
}

func (c *RawCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.len()
}

func (c *RawCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.clear()
	c.accesses = 0
}
