// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-crypter/models"

// DerivedKey is the key material for one pipeline run.
type DerivedKey struct {
	Scheme models.Scheme
	// Key is the 32-byte AES key (pbkdf2, argon2id).
	Key []byte
	// Salt is the per-envelope salt; it travels in the envelope header.
	Salt []byte
	// Passphrase is the raw password bytes, set only for the direct scheme
	// where each chunk derives its own key.
	Passphrase []byte
}

// Destroy zeroes the secret parts of the key. The key must not be used
// afterwards.
func (k *DerivedKey) Destroy() {
	if k == nil {
		return
	}
	clear(k.Key)
	clear(k.Passphrase)
	k.Key = nil
	k.Passphrase = nil
}
