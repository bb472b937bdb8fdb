// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-crypter/models"
)

// FileMediaOpener opens picked media that lives on the local file system,
// given as a plain path or a file:// URI.
type FileMediaOpener struct{}

func NewFileMediaOpener() *FileMediaOpener {
	return &FileMediaOpener{}
}

func (o *FileMediaOpener) Open(ctx context.Context, media models.SelectedMedia) (ByteSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if media.URI == "" {
		return nil, fmt.Errorf("%w: no media selected", models.ErrInvalidInput)
	}

	path, err := mediaPath(media.URI)
	if err != nil {
		return nil, err
	}

	return OpenFile(path)
}

func mediaPath(uri string) (string, error) {
	if !strings.Contains(uri, "://") {
		return uri, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: bad media uri %q: %w", models.ErrInvalidInput, uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: unsupported media uri scheme %q", models.ErrIO, u.Scheme)
	}
	return u.Path, nil
}
