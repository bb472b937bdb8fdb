// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-crypter/internal/config"
	"github.com/MKhiriev/go-crypter/internal/utils"
)

const (
	DefaultCapacity       = 5
	DefaultRawTTL         = 5 * time.Minute
	DefaultSweepThreshold = 50
)

// Options configures both caches. Zero values fall back to the defaults.
type Options struct {
	Capacity       int
	RawTTL         time.Duration
	SweepThreshold int
	// Now is the clock used for insertion times and expiry.
	Now func() time.Time
}

// OptionsFromConfig maps the cache section of the application config.
func OptionsFromConfig(cfg config.Cache) Options {
	return Options{
		Capacity:       cfg.Capacity,
		RawTTL:         cfg.RawTTL,
		SweepThreshold: cfg.SweepThreshold,
	}
}

// Caches groups the ciphertext and raw-bytes caches of one session.
type Caches struct {
	Ciphertext *CiphertextCache
	Raw        *RawCache
}

func New(opts Options) (*Caches, error) {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.RawTTL <= 0 {
		opts.RawTTL = DefaultRawTTL
	}
	if opts.SweepThreshold <= 0 {
		opts.SweepThreshold = DefaultSweepThreshold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	hasher, err := utils.NewRandomHasher()
	if err != nil {
		return nil, fmt.Errorf("error creating cache key hasher: %w", err)
	}

	ciphertext, err := newCiphertextCache(opts.Capacity, hasher, opts.Now)
	if err != nil {
		return nil, err
	}
	raw, err := newRawCache(opts.Capacity, opts.RawTTL, opts.SweepThreshold, opts.Now)
	if err != nil {
		return nil, err
	}

	return &Caches{
		Ciphertext: ciphertext,
		Raw:        raw,
	}, nil
}

// Clear drops every entry of both caches.
func (c *Caches) Clear() {
	c.Ciphertext.Clear()
	c.Raw.Clear()
}
