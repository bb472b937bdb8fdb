// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

// MinImageSize is the shortest plaintext accepted as an image. Shorter
// output almost always means the key was wrong.
const MinImageSize = 100

type signature struct {
	kind   models.ImageKind
	prefix []byte
}

var imageSignatures = []signature{
	{kind: models.ImageJPEG, prefix: []byte{0xFF, 0xD8, 0xFF}},
	{kind: models.ImagePNG, prefix: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	{kind: models.ImageGIF, prefix: []byte("GIF87a")},
	{kind: models.ImageGIF, prefix: []byte("GIF89a")},
}

// Older releases encrypted the base64 text of an image rather than its
// bytes. These are the base64 renderings of the same signatures.
var base64Signatures = []signature{
	{kind: models.ImageJPEG, prefix: []byte("/9j/")},
	{kind: models.ImagePNG, prefix: []byte("iVBORw0KGgo")},
	{kind: models.ImageGIF, prefix: []byte("R0lGODlh")},
	{kind: models.ImageGIF, prefix: []byte("R0lGODdh")},
}

// FormatClassifier is the default [Classifier].
type FormatClassifier struct{}

func NewFormatClassifier() *FormatClassifier {
	return &FormatClassifier{}
}

// Classify matches the leading bytes of data against the JPEG, PNG and GIF
// signatures after checking the minimum plausible length.
func (c *FormatClassifier) Classify(data []byte) (models.ImageKind, error) {
	return classify(data, imageSignatures)
}

// ClassifyBase64Text is Classify for plaintext that holds the base64 text
// of an image.
func (c *FormatClassifier) ClassifyBase64Text(data []byte) (models.ImageKind, error) {
	return classify(data, base64Signatures)
}

func classify(data []byte, signatures []signature) (models.ImageKind, error) {
	if len(data) < MinImageSize {
		return "", fmt.Errorf("%w: %d bytes is too short", models.ErrNotAnImage, len(data))
	}
	for _, s := range signatures {
		if bytes.HasPrefix(data, s.prefix) {
			return s.kind, nil
		}
	}
	return "", fmt.Errorf("%w: unknown signature", models.ErrNotAnImage)
}
