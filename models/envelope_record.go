// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EnvelopeRecord is an encrypted envelope kept in the local archive. Only
// ciphertext is stored; passwords never reach the archive.
type EnvelopeRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scheme    Scheme    `json:"scheme"`
	Chunks    int       `json:"chunks"`
	Size      int64     `json:"size"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EnvelopeFilter narrows an archive listing.
type EnvelopeFilter struct {
	Scheme Scheme
	Limit  uint64
}
