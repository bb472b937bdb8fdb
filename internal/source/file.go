// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-crypter/internal/utils"
	"github.com/MKhiriev/go-crypter/models"
)

// FileSource reads ranges from an open file with ReadAt, so concurrent
// readers do not share a file offset.
type FileSource struct {
	path   string
	file   *os.File
	length int64
}

// OpenFile opens path for range reads. The caller must Close the source.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", models.ErrIO, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: stat %s: %w", models.ErrIO, path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", models.ErrIO, path)
	}

	return &FileSource{path: path, file: f, length: info.Size()}, nil
}

func (s *FileSource) ID() string { return s.path }

func (s *FileSource) Length() int64 { return s.length }

func (s *FileSource) ReadRange(offset int64, size int) ([]byte, error) {
	if offset < 0 || size < 0 || offset > s.length {
		return nil, fmt.Errorf("%w: range [%d,+%d) outside %s", models.ErrIO, offset, size, s.path)
	}

	n := min(int64(size), s.length-offset)
	buf := make([]byte, n)
	read, err := s.file.ReadAt(buf, offset)
	if err != nil && !(errors.Is(err, io.EOF) && int64(read) == n) {
		return nil, fmt.Errorf("%w: read %s at %d: %w", models.ErrIO, s.path, offset, err)
	}

	return buf[:read], nil
}

func (s *FileSource) Close() error {
	return s.file.Close()
}

// FileSink appends to a file, creating it if needed.
type FileSink struct {
	path string
	file *os.File
}

// CreateFile creates (or truncates) path for appending.
func CreateFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", models.ErrIO, path, err)
	}
	return &FileSink{path: path, file: f}, nil
}

func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Append(p []byte) error {
	if _, err := s.file.Write(p); err != nil {
		return fmt.Errorf("%w: write %s: %w", models.ErrIO, s.path, err)
	}
	return nil
}

func (s *FileSink) Clear() error {
	if err := s.file.Truncate(0); err != nil {
		return fmt.Errorf("%w: truncate %s: %w", models.ErrIO, s.path, err)
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %w", models.ErrIO, s.path, err)
	}
	return nil
}

func (s *FileSink) Close() error {
	if err := s.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("%w: close %s: %w", models.ErrIO, s.path, err)
	}
	return nil
}

// TempFileSink stages output in a uniquely named file inside dir until it
// is committed to its destination or discarded.
type TempFileSink struct {
	*FileSink
}

// NewTempFileSink creates "<prefix>-<uuid>.tmp" in dir. Names never collide
// across concurrent runs.
func NewTempFileSink(dir, prefix string, ids *utils.UUIDGenerator) (*TempFileSink, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	sink, err := CreateFile(filepath.Join(dir, prefix+"-"+ids.Generate()+".tmp"))
	if err != nil {
		return nil, err
	}
	return &TempFileSink{FileSink: sink}, nil
}

// Commit closes the temp file and renames it to dst.
func (s *TempFileSink) Commit(dst string) error {
	if err := s.Close(); err != nil {
		return err
	}
	if err := os.Rename(s.path, dst); err != nil {
		return fmt.Errorf("%w: rename %s to %s: %w", models.ErrIO, s.path, dst, err)
	}
	return nil
}

// Discard closes and removes the temp file. Safe to call after Commit.
func (s *TempFileSink) Discard() error {
	_ = s.Close()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", models.ErrIO, s.path, err)
	}
	return nil
}
