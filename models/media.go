// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SelectedMedia is an image picked from the gallery or captured with the
// camera. The core only uses it as a factory for a byte source; URI doubles
// as the source identity for caching.
type SelectedMedia struct {
	// URI is the local path (or file:// URI) of the picked item.
	URI string
	// ByteLength is the size reported by the picker. Zero means unknown.
	ByteLength int64
	// MIMEHint is the media type reported by the picker, if any.
	MIMEHint string
}
