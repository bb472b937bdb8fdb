// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/models"
)

const (
	fixedHeaderSize = 11 // magic(4) version(1) scheme(1) chunks(4) saltLen(1)
	frameHeaderSize = 4
)

// BinaryHeader renders the header of the binary form.
func BinaryHeader(h Header) []byte {
	out := make([]byte, 0, fixedHeaderSize+len(h.Salt))
	out = append(out, Magic...)
	out = append(out, BinaryVersion, h.Scheme.Code())
	out = binary.BigEndian.AppendUint32(out, uint32(h.Chunks))
	out = append(out, byte(len(h.Salt)))
	return append(out, h.Salt...)
}

// Frame renders one sealed chunk as a length-prefixed frame.
func Frame(sealed []byte) []byte {
	out := make([]byte, frameHeaderSize+len(sealed))
	binary.BigEndian.PutUint32(out, uint32(len(sealed)))
	copy(out[frameHeaderSize:], sealed)
	return out
}

// FrameRef locates the sealed chunk of one frame inside a source.
type FrameRef struct {
	Offset int64
	Length int
}

// IsBinary reports whether src starts with the binary magic.
func IsBinary(src source.ByteSource) bool {
	if src.Length() < int64(len(Magic)) {
		return false
	}
	head, err := src.ReadRange(0, len(Magic))
	return err == nil && bytes.Equal(head, Magic)
}

// ScanFrames parses the binary header of src and locates every frame by
// reading only the length prefixes.
func ScanFrames(src source.ByteSource) (Header, []FrameRef, error) {
	total := src.Length()
	if total < fixedHeaderSize {
		return Header{}, nil, fmt.Errorf("%w: binary envelope too short", models.ErrDecryptionFailed)
	}

	fixed, err := src.ReadRange(0, fixedHeaderSize)
	if err != nil {
		return Header{}, nil, err
	}
	if !bytes.Equal(fixed[:len(Magic)], Magic) {
		return Header{}, nil, fmt.Errorf("%w: bad magic", models.ErrDecryptionFailed)
	}
	if fixed[4] != BinaryVersion {
		return Header{}, nil, fmt.Errorf("%w: unsupported version %d", models.ErrDecryptionFailed, fixed[4])
	}

	scheme, ok := models.SchemeFromCode(fixed[5])
	if !ok {
		return Header{}, nil, fmt.Errorf("%w: unknown scheme code %d", models.ErrDecryptionFailed, fixed[5])
	}

	count := binary.BigEndian.Uint32(fixed[6:10])
	saltLen := int(fixed[10])
	offset := int64(fixedHeaderSize)
	var salt []byte
	if saltLen > 0 {
		if offset+int64(saltLen) > total {
			return Header{}, nil, fmt.Errorf("%w: truncated salt", models.ErrDecryptionFailed)
		}
		salt, err = src.ReadRange(offset, saltLen)
		if err != nil {
			return Header{}, nil, err
		}
		salt = bytes.Clone(salt)
		offset += int64(saltLen)
	}

	h := Header{Scheme: scheme, Salt: salt, Chunks: int(count)}
	if err := h.validate(); err != nil {
		return Header{}, nil, err
	}

	var frames []FrameRef
	for offset < total {
		if offset+frameHeaderSize > total {
			return Header{}, nil, models.NewPipelineError("scan frames", len(frames), errTruncated)
		}
		prefix, err := src.ReadRange(offset, frameHeaderSize)
		if err != nil {
			return Header{}, nil, err
		}
		n := int64(binary.BigEndian.Uint32(prefix))
		offset += frameHeaderSize
		if n == 0 || offset+n > total {
			return Header{}, nil, models.NewPipelineError("scan frames", len(frames), errTruncated)
		}
		frames = append(frames, FrameRef{Offset: offset, Length: int(n)})
		offset += n
	}

	if err := h.checkCount(len(frames)); err != nil {
		return Header{}, nil, err
	}
	return h, frames, nil
}

var errTruncated = fmt.Errorf("%w: truncated frame", models.ErrDecryptionFailed)
