// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from args and returns the parsed
// config together with the remaining positional arguments.
//
// Flags:
//
//	-scheme key derivation scheme (direct, pbkdf2, argon2id)
//	-chunk-size chunk size (e.g., "1MiB", "100KB")
//	-concurrency maximum chunks processed at once
//	-max-size source size ceiling (e.g., "50MiB")
//	-deadline whole-run deadline (e.g., "60s")
//	-cache-capacity maximum entries per cache
//	-raw-ttl raw cache entry lifetime (e.g., "5m")
//	-d archive database DSN
//	-export-dir directory for exported .txt envelopes
//	-media-dir directory for decrypted images
//	-temp-dir directory for per-run temp files
//	-janitor-interval raw cache sweep interval (e.g., "1m")
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var scheme string
	var chunkSize, maxSize ByteSize
	var concurrency int
	var deadline time.Duration
	var cacheCapacity int
	var rawTTL time.Duration
	var databaseDSN string
	var exportDir, mediaDir, tempDir string
	var janitorInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("crypter", flag.ContinueOnError)
	fs.StringVar(&scheme, "scheme", "", "Key derivation scheme: direct, pbkdf2, argon2id")
	fs.Var(&chunkSize, "chunk-size", "Chunk size (e.g., 1MiB, 100KB)")
	fs.IntVar(&concurrency, "concurrency", 0, "Maximum chunks processed at once")
	fs.Var(&maxSize, "max-size", "Source size ceiling (e.g., 50MiB)")
	fs.DurationVar(&deadline, "deadline", 0, "Whole-run deadline (e.g., 60s)")
	fs.IntVar(&cacheCapacity, "cache-capacity", 0, "Maximum entries per cache")
	fs.DurationVar(&rawTTL, "raw-ttl", 0, "Raw cache entry lifetime (e.g., 5m)")
	fs.StringVar(&databaseDSN, "d", "", "Archive database DSN")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for exported envelopes")
	fs.StringVar(&mediaDir, "media-dir", "", "Directory for decrypted images")
	fs.StringVar(&tempDir, "temp-dir", "", "Directory for temp files")
	fs.DurationVar(&janitorInterval, "janitor-interval", 0, "Raw cache sweep interval (e.g., 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Crypto: Crypto{
			Scheme:        scheme,
			ChunkSize:     chunkSize,
			Concurrency:   concurrency,
			MaxSourceSize: maxSize,
			Deadline:      deadline,
		},
		Cache: Cache{
			Capacity: cacheCapacity,
			RawTTL:   rawTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				ExportDir: exportDir,
				MediaDir:  mediaDir,
				TempDir:   tempDir,
			},
		},
		Workers:      Workers{JanitorInterval: janitorInterval},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
