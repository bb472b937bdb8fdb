package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a password into the key material a ChunkCodec consumes.
//
// Schemes:
//
//	direct   - no derivation, the codec consumes the passphrase itself
//	pbkdf2   - PBKDF2-HMAC-SHA256, 100,000 rounds, 16-byte salt
//	argon2id - Argon2id, t=1, m=64 MiB, p=4, 16-byte salt
type KeyDeriver interface {
	// DeriveKey derives a key from password. When salt is empty a fresh
	// random salt is generated (encryption); otherwise the given salt is
	// reused (decryption). An empty password fails with models.ErrInvalidInput.
	DeriveKey(password string, salt []byte) (*DerivedKey, error)
}

// ChunkCodec seals and opens one chunk. Implementations hold no per-call
// state and are safe for concurrent use across chunks.
type ChunkCodec interface {
	// EncryptChunk seals plain as chunk number index of total. A fresh
	// random IV is used for every call.
	EncryptChunk(index, total int, plain []byte, key *DerivedKey) ([]byte, error)

	// DecryptChunk opens a sealed chunk. Every failure (wrong key, bad
	// padding, failed authentication, truncated input) is reported as
	// models.ErrDecryptionFailed.
	DecryptChunk(index, total int, sealed []byte, key *DerivedKey) ([]byte, error)
}
