// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-crypter/internal/logger"
)

// CacheJanitor periodically sweeps expired raw cache entries so that large
// buffers do not wait for the next lookup to be released.
type CacheJanitor struct {
	cache    Sweeper
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCacheJanitor(cache Sweeper, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitor{
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

func (j *CacheJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.done != nil {
		return
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})
	go j.loop(ctx, j.done)
}

func (j *CacheJanitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := j.cache.Sweep(); n > 0 {
				j.logger.Debug().Str("func", "CacheJanitor.loop").Int("swept", n).Msg("expired cache entries removed")
			}
		}
	}
}

func (j *CacheJanitor) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	j.mu.Lock()
	if j.done == done {
		j.cancel, j.done = nil, nil
	}
	j.mu.Unlock()
}
