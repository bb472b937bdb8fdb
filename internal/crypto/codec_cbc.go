// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-crypter/models"
)

// openSSLMagic prefixes every sealed chunk of the direct scheme, followed by
// an 8-byte salt. Base64 of the whole blob is what CryptoJS
// AES.encrypt(text, passphrase).toString() produces.
var openSSLMagic = []byte("Salted__")

const openSSLSaltSize = 8

// cbcCodec is AES-256-CBC with PKCS#7 padding and the OpenSSL EVP_BytesToKey
// (MD5, one round) passphrase derivation. Each chunk gets its own random
// salt, hence its own key and IV.
type cbcCodec struct {
	rand io.Reader
}

// NewCBCCodec returns the [ChunkCodec] of the direct scheme.
func NewCBCCodec() ChunkCodec {
	return &cbcCodec{rand: rand.Reader}
}

func (c *cbcCodec) EncryptChunk(_, _ int, plain []byte, key *DerivedKey) ([]byte, error) {
	if key == nil || len(key.Passphrase) == 0 {
		return nil, fmt.Errorf("%w: missing passphrase", models.ErrInvalidInput)
	}

	salt := make([]byte, openSSLSaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aesKey, iv := evpBytesToKey(key.Passphrase, salt)
	defer clear(aesKey)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plain, aes.BlockSize)
	out := make([]byte, len(openSSLMagic)+openSSLSaltSize+len(padded))
	copy(out, openSSLMagic)
	copy(out[len(openSSLMagic):], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[len(openSSLMagic)+openSSLSaltSize:], padded)

	return out, nil
}

func (c *cbcCodec) DecryptChunk(_, _ int, sealed []byte, key *DerivedKey) ([]byte, error) {
	if key == nil || len(key.Passphrase) == 0 {
		return nil, fmt.Errorf("%w: missing passphrase", models.ErrInvalidInput)
	}

	header := len(openSSLMagic) + openSSLSaltSize
	if len(sealed) < header+aes.BlockSize || !bytes.HasPrefix(sealed, openSSLMagic) {
		return nil, fmt.Errorf("%w: not a salted openssl blob", models.ErrDecryptionFailed)
	}

	ct := sealed[header:]
	if len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", models.ErrDecryptionFailed)
	}

	aesKey, iv := evpBytesToKey(key.Passphrase, sealed[len(openSSLMagic):header])
	defer clear(aesKey)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDecryptionFailed, err)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	unpadded, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok {
		return nil, fmt.Errorf("%w: bad padding", models.ErrDecryptionFailed)
	}
	return unpadded, nil
}

// evpBytesToKey is OpenSSL's EVP_BytesToKey with MD5 and a single round:
// D_i = MD5(D_{i-1} || passphrase || salt), concatenated until 32 key bytes
// and 16 IV bytes are available.
func evpBytesToKey(passphrase, salt []byte) (key, iv []byte) {
	const need = KeySize + aes.BlockSize

	derived := make([]byte, 0, need+md5.Size)
	var prev []byte
	for len(derived) < need {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:KeySize], derived[KeySize:need]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+pad)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, false
		}
	}
	return data[:len(data)-pad], true
}
