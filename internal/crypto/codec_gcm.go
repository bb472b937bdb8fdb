// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/MKhiriev/go-crypter/models"
)

// IVSize is the per-chunk GCM nonce length.
const IVSize = 16

// gcmCodec is AES-256-GCM with a 16-byte random IV per chunk. The chunk
// ordinal and the chunk count are bound as additional data, so chunks cannot
// be reordered, swapped between positions or dropped from the end of an
// envelope.
//
// Sealed chunk layout: iv (16 bytes) ‖ ciphertext ‖ tag (16 bytes).
type gcmCodec struct {
	rand io.Reader
}

// NewGCMCodec returns the [ChunkCodec] of the pbkdf2 and argon2id schemes.
func NewGCMCodec() ChunkCodec {
	return &gcmCodec{rand: rand.Reader}
}

func (c *gcmCodec) EncryptChunk(index, total int, plain []byte, key *DerivedKey) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, IVSize, IVSize+len(plain)+gcm.Overhead())
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	// iv doubles as the dst prefix: result is iv ‖ ciphertext ‖ tag
	return gcm.Seal(iv, iv, plain, chunkAAD(index, total)), nil
}

func (c *gcmCodec) DecryptChunk(index, total int, sealed []byte, key *DerivedKey) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDecryptionFailed, err)
	}

	if len(sealed) < IVSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: chunk too short", models.ErrDecryptionFailed)
	}

	iv, ct := sealed[:IVSize], sealed[IVSize:]
	plain, err := gcm.Open(nil, iv, ct, chunkAAD(index, total))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDecryptionFailed, err)
	}
	return plain, nil
}

func newGCM(key *DerivedKey) (cipher.AEAD, error) {
	if key == nil || len(key.Key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes", models.ErrInvalidInput, KeySize)
	}

	block, err := aes.NewCipher(key.Key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// chunkAAD is index ‖ total, both big-endian uint64.
func chunkAAD(index, total int) []byte {
	aad := make([]byte, 16)
	binary.BigEndian.PutUint64(aad, uint64(index))
	binary.BigEndian.PutUint64(aad[8:], uint64(total))
	return aad
}
