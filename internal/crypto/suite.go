// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

// Suite pairs the key deriver and chunk codec of one scheme.
type Suite struct {
	Scheme  models.Scheme
	Deriver KeyDeriver
	Codec   ChunkCodec
}

// NewSuite resolves the suite for scheme. Ciphertext produced under one
// scheme never decrypts under another.
func NewSuite(scheme models.Scheme) (Suite, error) {
	switch scheme {
	case models.SchemeDirect:
		return Suite{Scheme: scheme, Deriver: NewDirectDeriver(), Codec: NewCBCCodec()}, nil
	case models.SchemePBKDF2:
		return Suite{Scheme: scheme, Deriver: NewPBKDF2Deriver(), Codec: NewGCMCodec()}, nil
	case models.SchemeArgon2:
		return Suite{Scheme: scheme, Deriver: NewArgon2Deriver(), Codec: NewGCMCodec()}, nil
	default:
		return Suite{}, fmt.Errorf("%w: unknown scheme %q", models.ErrInvalidInput, scheme)
	}
}
