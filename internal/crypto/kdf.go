// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-crypter/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the per-envelope salt length of the salted schemes.
	SaltSize = 16
	// KeySize is the AES-256 key length.
	KeySize = 32
	// PBKDF2Iterations is the PBKDF2-HMAC-SHA256 round count.
	PBKDF2Iterations = 100_000
)

// directDeriver keeps the passphrase for codecs that hash it per chunk.
type directDeriver struct{}

// NewDirectDeriver returns the [KeyDeriver] of the direct scheme.
func NewDirectDeriver() KeyDeriver {
	return directDeriver{}
}

func (directDeriver) DeriveKey(password string, _ []byte) (*DerivedKey, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	return &DerivedKey{
		Scheme:     models.SchemeDirect,
		Passphrase: []byte(password),
	}, nil
}

// pbkdf2Deriver stretches the password with PBKDF2-HMAC-SHA256.
type pbkdf2Deriver struct {
	iterations int
	rand       io.Reader
}

// NewPBKDF2Deriver returns the [KeyDeriver] of the pbkdf2 scheme.
func NewPBKDF2Deriver() KeyDeriver {
	return &pbkdf2Deriver{
		iterations: PBKDF2Iterations,
		rand:       rand.Reader,
	}
}

func (d *pbkdf2Deriver) DeriveKey(password string, salt []byte) (*DerivedKey, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	salt, err := saltOrNew(d.rand, salt)
	if err != nil {
		return nil, err
	}

	return &DerivedKey{
		Scheme: models.SchemePBKDF2,
		Key:    pbkdf2.Key([]byte(password), salt, d.iterations, KeySize, sha256.New),
		Salt:   salt,
	}, nil
}

// argon2Deriver stretches the password with Argon2id.
type argon2Deriver struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	rand         io.Reader
}

// NewArgon2Deriver constructs the argon2id [KeyDeriver] with the parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewArgon2Deriver() KeyDeriver {
	return &argon2Deriver{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		rand:         rand.Reader,
	}
}

func (d *argon2Deriver) DeriveKey(password string, salt []byte) (*DerivedKey, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	salt, err := saltOrNew(d.rand, salt)
	if err != nil {
		return nil, err
	}

	return &DerivedKey{
		Scheme: models.SchemeArgon2,
		Key: argon2.IDKey(
			[]byte(password),
			salt,
			d.argonTime,
			d.argonMemory,
			d.argonThreads,
			KeySize,
		),
		Salt: salt,
	}, nil
}

// saltOrNew returns a copy of salt, or SaltSize random bytes when salt is
// empty.
func saltOrNew(r io.Reader, salt []byte) ([]byte, error) {
	if len(salt) > 0 {
		return append([]byte(nil), salt...), nil
	}

	fresh := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, fresh); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return fresh, nil
}

// checkPassword rejects empty and whitespace-only passwords. Surrounding
// whitespace of an accepted password is kept as typed.
func checkPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: empty password", models.ErrInvalidInput)
	}
	return nil
}
