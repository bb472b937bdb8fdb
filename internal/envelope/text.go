// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-crypter/models"
)

// TextPrefix renders the header of the text form, up to and including the
// colon that precedes the first chunk.
func TextPrefix(h Header) string {
	return TextTag + ":" + string(h.Scheme) + ":" + strconv.Itoa(h.Chunks) + ":" +
		base64.StdEncoding.EncodeToString(h.Salt) + ":"
}

// TextChunk renders sealed chunk i of the text form, with the leading
// separator for every chunk but the first.
func TextChunk(i int, sealed []byte) string {
	enc := base64.StdEncoding.EncodeToString(sealed)
	if i == 0 {
		return enc
	}
	return Separator + enc
}

// DecodeText parses a tagged or legacy text envelope into its header and
// sealed chunks. Surrounding whitespace is ignored.
func DecodeText(text string) (Header, [][]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Header{}, nil, fmt.Errorf("%w: empty envelope", models.ErrDecryptionFailed)
	}

	if !strings.HasPrefix(text, TextTag+":") {
		chunks, err := decodeChunks(text)
		if err != nil {
			return Header{}, nil, err
		}
		return Header{Scheme: models.SchemeDirect, Chunks: len(chunks), Legacy: true}, chunks, nil
	}

	parts := strings.SplitN(text, ":", 5)
	if len(parts) != 5 {
		return Header{}, nil, fmt.Errorf("%w: truncated header", models.ErrDecryptionFailed)
	}

	count, err := strconv.Atoi(parts[2])
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: chunk count: %w", models.ErrDecryptionFailed, err)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: salt: %w", models.ErrDecryptionFailed, err)
	}
	if len(salt) == 0 {
		salt = nil
	}

	h := Header{Scheme: models.Scheme(parts[1]), Salt: salt, Chunks: count}
	if err := h.validate(); err != nil {
		return Header{}, nil, err
	}

	chunks, err := decodeChunks(parts[4])
	if err != nil {
		return Header{}, nil, err
	}
	if err := h.checkCount(len(chunks)); err != nil {
		return Header{}, nil, err
	}
	return h, chunks, nil
}

func decodeChunks(body string) ([][]byte, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: no chunks", models.ErrDecryptionFailed)
	}

	parts := strings.Split(body, Separator)
	chunks := make([][]byte, len(parts))
	for i, p := range parts {
		c, err := base64.StdEncoding.DecodeString(strings.TrimSpace(p))
		if err != nil || len(c) == 0 {
			return nil, models.NewPipelineError("decode envelope", i, fmt.Errorf("%w: bad chunk encoding", models.ErrDecryptionFailed))
		}
		chunks[i] = c
	}
	return chunks, nil
}

// Inspect reports the header and chunk count of a text envelope without
// decrypting it.
func Inspect(text string) (Info, error) {
	h, chunks, err := DecodeText(text)
	if err != nil {
		return Info{}, err
	}
	return Info{Header: h, Chunks: len(chunks), Format: FormatText}, nil
}
