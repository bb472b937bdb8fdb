// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-crypter/models"
)

// MemorySource serves reads from an in-memory buffer.
type MemorySource struct {
	id   string
	data []byte
}

// NewMemorySource wraps data without copying it.
func NewMemorySource(id string, data []byte) *MemorySource {
	return &MemorySource{id: id, data: data}
}

func (s *MemorySource) ID() string { return s.id }

func (s *MemorySource) Length() int64 { return int64(len(s.data)) }

func (s *MemorySource) ReadRange(offset int64, size int) ([]byte, error) {
	if offset < 0 || size < 0 || offset > int64(len(s.data)) {
		return nil, fmt.Errorf("%w: range [%d,+%d) outside source of %d bytes", models.ErrIO, offset, size, len(s.data))
	}
	end := min(offset+int64(size), int64(len(s.data)))
	return s.data[offset:end], nil
}

// MemorySink collects appended bytes in memory. It is safe for concurrent
// use.
type MemorySink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Append(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Write(p)
	return nil
}

func (s *MemorySink) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Reset()
	return nil
}

// Bytes returns a copy of everything appended so far.
func (s *MemorySink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.buf.Bytes())
}

// ReadAll returns the whole content of src.
func ReadAll(src ByteSource) ([]byte, error) {
	n := src.Length()
	if n == 0 {
		return []byte{}, nil
	}
	data, err := src.ReadRange(0, int(n))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != n {
		return nil, fmt.Errorf("%w: short read of %s: %d of %d bytes", models.ErrIO, src.ID(), len(data), n)
	}
	return data, nil
}
