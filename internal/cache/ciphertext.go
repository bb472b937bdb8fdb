// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-crypter/internal/utils"
	"github.com/MKhiriev/go-crypter/models"
)

// CiphertextCache remembers envelopes produced for a source under a given
// password and scheme.
type CiphertextCache struct {
	mu     sync.Mutex
	hasher *utils.Hasher
	items  *fifo[string]
	now    func() time.Time
}

func newCiphertextCache(capacity int, hasher *utils.Hasher, now func() time.Time) (*CiphertextCache, error) {
	items, err := newFIFO[string](capacity)
	if err != nil {
		return nil, err
	}
	return &CiphertextCache{
		hasher: hasher,
		items:  items,
		now:    now,
	}, nil
}

func (c *CiphertextCache) key(sourceID string, scheme models.Scheme, password string) string {
	return c.hasher.HashString(sourceID, string(scheme), password)
}

// Get returns the cached envelope. A hit does not change eviction order.
func (c *CiphertextCache) Get(sourceID string, scheme models.Scheme, password string) (string, bool) {
	k := c.key(sourceID, scheme, password)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items.get(k)
	if !ok {
		return "", false
	}
	return e.value, true
}

func (c *CiphertextCache) Put(sourceID string, scheme models.Scheme, password string, envelope string) {
	k := c.key(sourceID, scheme, password)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items.put(k, envelope, c.now())
}

func (c *CiphertextCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.len()
}

func (c *CiphertextCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.clear()
}
