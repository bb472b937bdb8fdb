// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envelope encodes and decodes the serialized form of an encrypted
// payload: a versioned header (scheme and salt) followed by the ordered
// sealed chunks.
//
// Text form, safe to copy, paste and store in .txt files:
//
//	fzc1:<scheme>:<chunk count>:<base64 salt>:<base64 chunk>|<base64 chunk>|...
//
// Legacy text form, as produced by older releases (always direct scheme):
//
//	<CryptoJS string>|<CryptoJS string>|...
//
// Binary form, for file-to-file pipelines:
//
//	"FZC1" version(1) scheme(1) chunks(4) saltLen(1) salt frame...
//	frame = uint32 big-endian length ‖ sealed chunk
//
// The chunk count of a tagged envelope must match the chunks present, so
// dropping trailing chunks is detected. The salted schemes also bind the
// count into each chunk's authentication tag.
//
// Every malformed envelope is reported as models.ErrDecryptionFailed.
package envelope

import (
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

const (
	// TextTag is the format-version tag of the text form.
	TextTag = "fzc1"
	// Separator joins chunks in the text form. It is not part of the
	// standard base64 alphabet.
	Separator = "|"
	// BinaryVersion is the version byte of the binary form.
	BinaryVersion byte = 1
	// MaxSaltSize bounds the salt accepted from a header.
	MaxSaltSize = 64
	// MaxChunks bounds the chunk count accepted from a header.
	MaxChunks = 1 << 24
)

// Magic starts every binary envelope.
var Magic = []byte("FZC1")

// Format selects the serialized form of an envelope.
type Format int

const (
	FormatText Format = iota
	FormatBinary
)

func (f Format) String() string {
	if f == FormatBinary {
		return "binary"
	}
	return "text"
}

// Header is the metadata that precedes the chunks.
type Header struct {
	Scheme models.Scheme
	Salt   []byte
	// Chunks is the number of chunks that follow. Legacy envelopes do not
	// declare it; it is then the number of chunks found.
	Chunks int
	// Legacy is set for untagged text envelopes.
	Legacy bool
}

func (h Header) validate() error {
	if !h.Scheme.Valid() {
		return fmt.Errorf("%w: unknown scheme %q", models.ErrDecryptionFailed, h.Scheme)
	}
	if len(h.Salt) > MaxSaltSize {
		return fmt.Errorf("%w: salt of %d bytes", models.ErrDecryptionFailed, len(h.Salt))
	}
	if h.Chunks < 1 || h.Chunks > MaxChunks {
		return fmt.Errorf("%w: chunk count %d", models.ErrDecryptionFailed, h.Chunks)
	}
	salted := h.Scheme != models.SchemeDirect
	if salted != (len(h.Salt) > 0) {
		return fmt.Errorf("%w: salt does not match scheme %s", models.ErrDecryptionFailed, h.Scheme)
	}
	return nil
}

// checkCount fails when the chunks found differ from the declared count.
func (h Header) checkCount(found int) error {
	if found != h.Chunks {
		return fmt.Errorf("%w: envelope declares %d chunks, found %d", models.ErrDecryptionFailed, h.Chunks, found)
	}
	return nil
}

// Info summarizes an envelope without decrypting it.
type Info struct {
	Header
	Chunks int
	Format Format
}

// MaxEnvelopeSize bounds the size of an envelope whose plaintext is at most
// plainMax bytes when chunks are no smaller than minChunk. Sealed chunks add
// at most 32 bytes (IV and tag, or OpenSSL header and padding), frames 4 more
// and the text form inflates by 4/3.
func MaxEnvelopeSize(plainMax, minChunk int64) int64 {
	if minChunk <= 0 {
		minChunk = 1
	}
	chunks := max(1, (plainMax+minChunk-1)/minChunk)
	sealed := plainMax + chunks*(32+4)
	text := (sealed+2)/3*4 + chunks*int64(len(Separator))
	return text + 256
}
