// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source provides the byte sources read by the pipeline and the
// byte sinks it appends output to, backed by memory or by files.
//
// All I/O failures are wrapped with models.ErrIO.
package source

import (
	"context"

	"github.com/MKhiriev/go-crypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// ByteSource is random-access, read-only input of a known length.
type ByteSource interface {
	// ID is the stable source identity used as a cache key component
	// (a path, URI or caller-chosen name).
	ID() string
	// Length returns the total number of bytes.
	Length() int64
	// ReadRange returns exactly size bytes starting at offset, or fewer only
	// when the range crosses the end of the source.
	ReadRange(offset int64, size int) ([]byte, error)
}

// ByteSink receives output in order.
type ByteSink interface {
	// Append writes p after everything appended so far.
	Append(p []byte) error
	// Clear drops everything appended so far.
	Clear() error
}

// MediaOpener turns a picked media item into a ByteSource.
type MediaOpener interface {
	Open(ctx context.Context, media models.SelectedMedia) (ByteSource, error)
}
