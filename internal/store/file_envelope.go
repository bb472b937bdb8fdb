// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-crypter/models"
)

// maxNameAttempts bounds the suffix search of createUnique.
const maxNameAttempts = 1000

// envelopeFileStore is the default implementation of [EnvelopeFiles]. It
// writes envelopes as "data_<unix millis>.txt" files into a directory.
type envelopeFileStore struct {
	dir string
	now func() time.Time
}

// NewEnvelopeFileStore returns an [EnvelopeFiles] rooted at dir. An empty
// dir means the current working directory.
func NewEnvelopeFileStore(dir string) EnvelopeFiles {
	return &envelopeFileStore{dir: dir, now: time.Now}
}

func (s *envelopeFileStore) Export(ctx context.Context, envelope string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := createUnique(s.dir, "data_"+strconv.FormatInt(s.now().UnixMilli(), 10), ".txt")
	if err != nil {
		return "", err
	}

	path := f.Name()
	if _, err = f.WriteString(envelope); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: write %s: %w", models.ErrIO, path, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: close %s: %w", models.ErrIO, path, err)
	}

	return path, nil
}

// Import returns the trimmed file content. An empty file is invalid input.
func (s *envelopeFileStore) Import(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", models.ErrIO, path, err)
	}

	envelope := strings.TrimSpace(string(data))
	if envelope == "" {
		return "", fmt.Errorf("%w: %s is empty", models.ErrInvalidInput, path)
	}

	return envelope, nil
}

// createUnique creates dir/base+ext, or dir/base_N+ext when the name is
// taken. The file is opened exclusively so concurrent callers never share it.
func createUnique(dir, base, ext string) (*os.File, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create dir %s: %w", models.ErrIO, dir, err)
		}
	}

	name := base + ext
	for i := 1; i <= maxNameAttempts; i++ {
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: create %s: %w", models.ErrIO, path, err)
		}
		name = base + "_" + strconv.Itoa(i) + ext
	}

	return nil, fmt.Errorf("%w: no free file name for %s%s in %s", models.ErrIO, base, ext, dir)
}
