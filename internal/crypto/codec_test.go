// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-crypter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// legacyVector was produced by
// openssl enc -aes-256-cbc -md md5 -S 0102030405060708 -pass pass:secret
// over "hello legacy world", with the Salted__ header prepended, which is
// the exact shape of a CryptoJS AES.encrypt(text, "secret").toString().
const legacyVector = "U2FsdGVkX18BAgMEBQYHCELNimTVHWDpwaoO4Br9l1zhX2caDJvK2jRhN8UCoT8F"

func directKey(pass string) *DerivedKey {
	return &DerivedKey{Scheme: models.SchemeDirect, Passphrase: []byte(pass)}
}

func gcmKey(fill byte) *DerivedKey {
	return &DerivedKey{Scheme: models.SchemePBKDF2, Key: bytes.Repeat([]byte{fill}, KeySize)}
}

// ── CBC (direct scheme) ───────────────────────────────────────────────────────

func TestCBCCodec_DecryptsOpenSSLVector(t *testing.T) {
	sealed, err := base64.StdEncoding.DecodeString(legacyVector)
	require.NoError(t, err)

	plain, err := NewCBCCodec().DecryptChunk(0, 1, sealed, directKey("secret"))
	require.NoError(t, err)
	assert.Equal(t, "hello legacy world", string(plain))
}

func TestCBCCodec_EncryptMatchesOpenSSLVector(t *testing.T) {
	c := &cbcCodec{rand: bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})}

	sealed, err := c.EncryptChunk(0, 1, []byte("hello legacy world"), directKey("secret"))
	require.NoError(t, err)
	assert.Equal(t, legacyVector, base64.StdEncoding.EncodeToString(sealed))
}

func TestCBCCodec_FreshSaltPerChunk(t *testing.T) {
	c := NewCBCCodec()
	key := directKey("pw")

	a, err := c.EncryptChunk(0, 1, []byte("same"), key)
	require.NoError(t, err)
	b, err := c.EncryptChunk(0, 1, []byte("same"), key)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCBCCodec_DecryptFailures(t *testing.T) {
	c := NewCBCCodec()
	good, err := c.EncryptChunk(0, 1, []byte("some plaintext bytes"), directKey("pw"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		sealed []byte
	}{
		{name: "too short", sealed: []byte("Salted__1234")},
		{name: "missing magic", sealed: append([]byte("NotSalt_"), good[8:]...)},
		{name: "partial block", sealed: good[:len(good)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DecryptChunk(0, 1, tt.sealed, directKey("pw"))
			assert.ErrorIs(t, err, models.ErrDecryptionFailed)
		})
	}
}

func TestCBCCodec_MissingPassphrase(t *testing.T) {
	_, err := NewCBCCodec().EncryptChunk(0, 1, []byte("x"), &DerivedKey{})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 33; n++ {
		data := bytes.Repeat([]byte{0x5A}, n)
		padded := pkcs7Pad(data, 16)
		require.Zero(t, len(padded)%16)
		require.Greater(t, len(padded), n)

		out, ok := pkcs7Unpad(padded, 16)
		require.True(t, ok)
		require.Equal(t, data, out)
	}

	_, ok := pkcs7Unpad(append(bytes.Repeat([]byte{1}, 15), 0), 16)
	assert.False(t, ok, "zero pad byte")
	_, ok = pkcs7Unpad(append(bytes.Repeat([]byte{1}, 15), 17), 16)
	assert.False(t, ok, "pad larger than block")
	_, ok = pkcs7Unpad(append(bytes.Repeat([]byte{1}, 14), 3, 2), 16)
	assert.False(t, ok, "inconsistent pad bytes")
}

// ── GCM (pbkdf2 / argon2id schemes) ───────────────────────────────────────────

func TestGCMCodec_Layout(t *testing.T) {
	sealed, err := NewGCMCodec().EncryptChunk(0, 1, []byte("hello"), gcmKey(1))
	require.NoError(t, err)

	// iv ‖ ct ‖ tag
	assert.Len(t, sealed, IVSize+5+16)
}

func TestGCMCodec_WrongKey(t *testing.T) {
	c := NewGCMCodec()
	sealed, err := c.EncryptChunk(3, 4, []byte("payload"), gcmKey(1))
	require.NoError(t, err)

	_, err = c.DecryptChunk(3, 4, sealed, gcmKey(2))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

func TestGCMCodec_ChunkOrdinalIsAuthenticated(t *testing.T) {
	c := NewGCMCodec()
	sealed, err := c.EncryptChunk(0, 2, []byte("first chunk"), gcmKey(1))
	require.NoError(t, err)

	_, err = c.DecryptChunk(1, 2, sealed, gcmKey(1))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

func TestGCMCodec_ChunkCountIsAuthenticated(t *testing.T) {
	c := NewGCMCodec()
	sealed, err := c.EncryptChunk(2, 4, []byte("third of four"), gcmKey(1))
	require.NoError(t, err)

	// the same chunk read as the last of a three-chunk envelope
	_, err = c.DecryptChunk(2, 3, sealed, gcmKey(1))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)

	plain, err := c.DecryptChunk(2, 4, sealed, gcmKey(1))
	require.NoError(t, err)
	assert.Equal(t, "third of four", string(plain))
}

func TestGCMCodec_Tampered(t *testing.T) {
	c := NewGCMCodec()
	sealed, err := c.EncryptChunk(0, 1, []byte("payload"), gcmKey(1))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xFF
	_, err = c.DecryptChunk(0, 1, sealed, gcmKey(1))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)

	_, err = c.DecryptChunk(0, 1, sealed[:IVSize], gcmKey(1))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

func TestGCMCodec_BadKeyLength(t *testing.T) {
	_, err := NewGCMCodec().EncryptChunk(0, 1, []byte("x"), &DerivedKey{Key: []byte("short")})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

// ── properties ────────────────────────────────────────────────────────────────

func TestCodecs_RoundTripProperty(t *testing.T) {
	codecs := map[string]struct {
		codec ChunkCodec
		key   func(pass string) *DerivedKey
	}{
		"cbc": {codec: NewCBCCodec(), key: directKey},
		"gcm": {codec: NewGCMCodec(), key: func(pass string) *DerivedKey {
			k := bytes.Repeat([]byte(pass), KeySize)[:KeySize]
			return &DerivedKey{Key: k}
		}},
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				plain := rapid.SliceOf(rapid.Byte()).Draw(rt, "plain")
				pass := rapid.StringMatching(`[a-z0-9]{1,16}`).Draw(rt, "pass")
				total := rapid.IntRange(1, 1000).Draw(rt, "total")
				index := rapid.IntRange(0, total-1).Draw(rt, "index")

				sealed, err := c.codec.EncryptChunk(index, total, plain, c.key(pass))
				require.NoError(rt, err)

				got, err := c.codec.DecryptChunk(index, total, sealed, c.key(pass))
				require.NoError(rt, err)
				if len(plain) == 0 {
					require.Empty(rt, got)
				} else {
					require.Equal(rt, plain, got)
				}
			})
		})
	}
}
