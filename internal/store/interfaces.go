// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-crypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EnvelopeRepository is the local archive of encrypted envelopes.
type EnvelopeRepository interface {
	// Save inserts a record. ID and CreatedAt are filled in when empty.
	Save(ctx context.Context, record models.EnvelopeRecord) (models.EnvelopeRecord, error)
	// Get returns the record with its body, or ErrEnvelopeNotFound.
	Get(ctx context.Context, id string) (models.EnvelopeRecord, error)
	// List returns records newest first, without bodies.
	List(ctx context.Context, filter models.EnvelopeFilter) ([]models.EnvelopeRecord, error)
	// Delete removes a record, or returns ErrEnvelopeNotFound.
	Delete(ctx context.Context, id string) error
}

// EnvelopeFiles exports envelopes to and imports them from plain text files.
type EnvelopeFiles interface {
	// Export writes envelope to a new uniquely named file and returns its path.
	Export(ctx context.Context, envelope string) (string, error)
	// Import reads an envelope from path.
	Import(ctx context.Context, path string) (string, error)
}

// MediaLibrary receives decrypted images, standing in for the device gallery.
type MediaLibrary interface {
	// SaveImage stores data under a new name and returns where it went.
	SaveImage(ctx context.Context, data []byte, kind models.ImageKind) (string, error)
}
