// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidCryptoConfigs indicates invalid pipeline settings
	// (for example, an unknown scheme or a zero chunk size).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidCacheConfigs indicates invalid cache settings
	// (for example, zero capacity).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero janitor interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
