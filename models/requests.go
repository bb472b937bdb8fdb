// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptRequest carries the caller inputs of an encrypt operation.
// SourceID identifies the byte source and doubles as its cache identity.
type EncryptRequest struct {
	SourceID string
	Password string
}

// DecryptRequest carries the caller inputs of a decrypt operation.
type DecryptRequest struct {
	Envelope string
	Password string
}
