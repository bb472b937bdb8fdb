// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/go-crypter/models"
)

// StructuredConfig is the top-level configuration container for the crypter.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the pipeline settings: scheme, chunking, concurrency,
	// size ceiling and deadline.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Cache holds capacity and expiry settings for the result caches.
	Cache Cache `envPrefix:"CACHE_"`

	// Storage holds configuration for the envelope archive database and the
	// directories used for exports, decrypted media and temp files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background housekeeping.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds the settings consumed by the pipeline runner.
type Crypto struct {
	// Scheme is the key-derivation scheme used for new encryptions
	// ("direct", "pbkdf2" or "argon2id").
	// Env: CRYPTO_SCHEME
	Scheme string `env:"SCHEME"`

	// ChunkSize is the upper bound of a single chunk (e.g. "1MiB", "100KB").
	// Env: CRYPTO_CHUNK_SIZE
	ChunkSize ByteSize `env:"CHUNK_SIZE"`

	// Concurrency caps the number of chunks processed at the same time.
	// Env: CRYPTO_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// MaxSourceSize is the size ceiling checked before any chunk is
	// dispatched.
	// Env: CRYPTO_MAX_SOURCE_SIZE
	MaxSourceSize ByteSize `env:"MAX_SOURCE_SIZE"`

	// Deadline is the wall-clock budget of a whole pipeline run.
	// Env: CRYPTO_DEADLINE
	Deadline time.Duration `env:"DEADLINE"`
}

// Cache holds settings shared by the ciphertext and raw-bytes caches.
type Cache struct {
	// Capacity is the maximum number of entries per cache.
	// Env: CACHE_CAPACITY
	Capacity int `env:"CAPACITY"`

	// RawTTL is how long a raw-bytes entry stays valid after insertion.
	// Env: CACHE_RAW_TTL
	RawTTL time.Duration `env:"RAW_TTL"`

	// SweepThreshold is the number of raw cache accesses after which an
	// opportunistic sweep of expired entries runs.
	// Env: CACHE_SWEEP_THRESHOLD
	SweepThreshold int `env:"SWEEP_THRESHOLD"`
}

// Storage groups the configuration for all storage backends used by the
// crypter.
type Storage struct {
	// DB holds the envelope archive database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system directories.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the sqlite envelope archive.
type DB struct {
	// DSN is the sqlite data source name (e.g. "crypter.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings.
type Files struct {
	// ExportDir is where exported .txt envelopes are written.
	// Env: STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`

	// MediaDir is where decrypted images are saved.
	// Env: STORAGE_FILES_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`

	// TempDir holds per-run temp files of file-based pipelines.
	// Env: STORAGE_FILES_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often expired raw cache entries are swept.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied before any other source.
const (
	DefaultChunkSize       ByteSize = 1 << 20
	DefaultConcurrency              = 4
	DefaultMaxSourceSize   ByteSize = 50 << 20
	DefaultDeadline                 = 60 * time.Second
	DefaultCacheCapacity            = 5
	DefaultRawTTL                   = 5 * time.Minute
	DefaultSweepThreshold           = 50
	DefaultJanitorInterval          = time.Minute
	DefaultDSN                      = "crypter.db"
	DefaultLogLevel                 = "info"
)

// Defaults returns the configuration used when no other source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			Scheme:        string(models.SchemePBKDF2),
			ChunkSize:     DefaultChunkSize,
			Concurrency:   DefaultConcurrency,
			MaxSourceSize: DefaultMaxSourceSize,
			Deadline:      DefaultDeadline,
		},
		Cache: Cache{
			Capacity:       DefaultCacheCapacity,
			RawTTL:         DefaultRawTTL,
			SweepThreshold: DefaultSweepThreshold,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
			Files: Files{
				ExportDir: ".",
				MediaDir:  ".",
				TempDir:   os.TempDir(),
			},
		},
		Workers: Workers{JanitorInterval: DefaultJanitorInterval},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// The positional arguments left after flag parsing are returned alongside
// the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.rest, nil
}
