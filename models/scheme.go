// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Scheme identifies a key-derivation policy together with the chunk cipher
// bound to it. Ciphertext produced under one scheme is never decryptable
// under another, so the scheme travels in every versioned envelope.
type Scheme string

const (
	// SchemeDirect passes the password to an OpenSSL-compatible AES-256-CBC
	// primitive that derives key and IV per chunk (CryptoJS passphrase mode).
	SchemeDirect Scheme = "direct"
	// SchemePBKDF2 stretches the password with PBKDF2-HMAC-SHA256 over a
	// random per-envelope salt and seals chunks with AES-256-GCM.
	SchemePBKDF2 Scheme = "pbkdf2"
	// SchemeArgon2 is like SchemePBKDF2 but uses Argon2id for stretching.
	SchemeArgon2 Scheme = "argon2id"
)

var schemeCodes = map[Scheme]byte{
	SchemeDirect: 1,
	SchemePBKDF2: 2,
	SchemeArgon2: 3,
}

// ParseScheme converts a user supplied name into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	scheme := Scheme(strings.ToLower(strings.TrimSpace(s)))
	if !scheme.Valid() {
		return "", fmt.Errorf("%w: unknown scheme %q", ErrInvalidInput, s)
	}
	return scheme, nil
}

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	_, ok := schemeCodes[s]
	return ok
}

// Code returns the single-byte identifier used in binary envelopes.
func (s Scheme) Code() byte {
	return schemeCodes[s]
}

// SchemeFromCode is the inverse of [Scheme.Code].
func SchemeFromCode(code byte) (Scheme, bool) {
	for scheme, c := range schemeCodes {
		if c == code {
			return scheme, true
		}
	}
	return "", false
}

func (s Scheme) String() string {
	return string(s)
}
