// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps the results of recent crypter runs in memory.
//
// Two bounded stores are provided:
//   - CiphertextCache maps (source, scheme, password) to an encrypted
//     envelope. The key is an HMAC digest under a per-process random key,
//     so passwords are never stored.
//   - RawCache maps a source identity to its raw bytes. Entries expire a
//     fixed time after insertion.
//
// Both evict strictly in insertion order once capacity is exceeded; a hit
// never refreshes an entry. Caches.Clear drops everything and cannot fail.
package cache
