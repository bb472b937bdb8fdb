// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending field otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParseScheme(cfg.Crypto.Scheme); err != nil {
		return fmt.Errorf("%w: scheme %q", ErrInvalidCryptoConfigs, cfg.Crypto.Scheme)
	}

	if cfg.Crypto.ChunkSize == 0 || cfg.Crypto.Concurrency <= 0 || cfg.Crypto.MaxSourceSize == 0 {
		return fmt.Errorf("%w: chunk size, concurrency and max source size must be positive", ErrInvalidCryptoConfigs)
	}

	if cfg.Crypto.Deadline < 0 {
		return fmt.Errorf("%w: negative deadline", ErrInvalidCryptoConfigs)
	}

	if cfg.Cache.Capacity <= 0 || cfg.Cache.RawTTL <= 0 {
		return fmt.Errorf("%w: capacity and raw ttl must be positive", ErrInvalidCacheConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
