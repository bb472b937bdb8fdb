// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-crypter/models"
)

// directoryMediaLibrary saves decrypted images as
// "decrypted_image_<unix millis>.<ext>" files in a directory.
type directoryMediaLibrary struct {
	dir string
	now func() time.Time
}

func NewDirectoryMediaLibrary(dir string) MediaLibrary {
	return &directoryMediaLibrary{dir: dir, now: time.Now}
}

func (l *directoryMediaLibrary) SaveImage(ctx context.Context, data []byte, kind models.ImageKind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := createUnique(l.dir, "decrypted_image_"+strconv.FormatInt(l.now().UnixMilli(), 10), "."+kind.Extension())
	if err != nil {
		return "", err
	}

	path := f.Name()
	if _, err = f.Write(data); err != nil {
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
