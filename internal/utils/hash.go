package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing backed by a pool of reusable
// hash instances. Each Hasher owns its key and pool, so independent
// instances never share digests.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
// The key is copied; the caller may wipe its slice afterwards.
func NewHasher(hashKey []byte) *Hasher {
	key := append([]byte(nil), hashKey...)
	h := &Hasher{}
	h.pool.New = func() any {
		return hmac.New(sha256.New, key)
	}
	return h
}

// NewRandomHasher returns a Hasher keyed with 32 random bytes.
// Digests produced by it are meaningful only within the process lifetime.
func NewRandomHasher() (*Hasher, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	h := NewHasher(key)
	clear(key)
	return h, nil
}

// Hash computes an HMAC-SHA256 digest over the given parts.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Writes every part prefixed with its big-endian length, so that
//     ("ab", "c") and ("a", "bc") produce different digests
//   - Resets it and returns it to the pool
//
// Example usage:
//
//	digest := hasher.Hash([]byte("photo.jpg"), []byte("pbkdf2"), password)
func (h *Hasher) Hash(parts ...[]byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	var lenBuf [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(p)))
		mac.Write(lenBuf[:])
		mac.Write(p)
	}
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HashString is like Hash but returns the hex-encoded digest, suitable as a
// map key.
func (h *Hasher) HashString(parts ...string) string {
	raw := make([][]byte, len(parts))
	for i, p := range parts {
		raw[i] = []byte(p)
	}
	return hex.EncodeToString(h.Hash(raw...))
}
