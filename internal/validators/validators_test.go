// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/go-crypter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func padTo(prefix []byte, n int) []byte {
	return append(bytes.Clone(prefix), make([]byte, n-len(prefix))...)
}

// ---------------------------------------------------------------------------
// RequestValidator
// ---------------------------------------------------------------------------

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
	assert.IsType(t, &RequestValidator{}, v)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRequestValidator_EncryptRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.EncryptRequest{SourceID: "a.png", Password: "pw"}},
		{name: "valid pointer", req: &models.EncryptRequest{SourceID: "a.png", Password: "pw"}},
		{name: "missing source", req: models.EncryptRequest{Password: "pw"}, wantErr: ErrEmptySource},
		{name: "blank source", req: models.EncryptRequest{SourceID: "  ", Password: "pw"}, wantErr: ErrEmptySource},
		{name: "missing password", req: models.EncryptRequest{SourceID: "a.png"}, wantErr: ErrEmptyPassword},
		{name: "whitespace password", req: models.EncryptRequest{SourceID: "a.png", Password: "   "}, wantErr: ErrEmptyPassword},
		{name: "scoped to source", req: models.EncryptRequest{SourceID: "a.png"}, fields: []string{FieldSourceID}},
		{name: "unknown field", req: models.EncryptRequest{SourceID: "a", Password: "b"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator().Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_DecryptRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr error
	}{
		{name: "valid", req: models.DecryptRequest{Envelope: "fzc1:...", Password: "pw"}},
		{name: "valid pointer", req: &models.DecryptRequest{Envelope: "fzc1:...", Password: "pw"}},
		{name: "missing envelope", req: models.DecryptRequest{Password: "pw"}, wantErr: ErrEmptyEnvelope},
		{name: "whitespace envelope", req: models.DecryptRequest{Envelope: "\n", Password: "pw"}, wantErr: ErrEmptyEnvelope},
		{name: "missing password", req: models.DecryptRequest{Envelope: "x"}, wantErr: ErrEmptyPassword},
		{name: "whitespace password", req: models.DecryptRequest{Envelope: "x", Password: " \t "}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRequestValidator().Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

// ---------------------------------------------------------------------------
// FormatClassifier
// ---------------------------------------------------------------------------

func TestFormatClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want models.ImageKind
	}{
		{name: "jpeg", data: padTo([]byte{0xFF, 0xD8, 0xFF, 0xE0}, 200), want: models.ImageJPEG},
		{name: "png", data: padTo([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 200), want: models.ImagePNG},
		{name: "gif87a", data: padTo([]byte("GIF87a"), 100), want: models.ImageGIF},
		{name: "gif89a", data: padTo([]byte("GIF89a"), 100), want: models.ImageGIF},
	}

	c := NewFormatClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClassifier_TooShort(t *testing.T) {
	_, err := NewFormatClassifier().Classify(padTo([]byte{0xFF, 0xD8, 0xFF}, MinImageSize-1))
	assert.ErrorIs(t, err, models.ErrNotAnImage)
}

func TestFormatClassifier_RandomBytes(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	c := NewFormatClassifier()

	for i := 0; i < 100; i++ {
		data := make([]byte, 100+r.IntN(1000))
		for j := range data {
			data[j] = byte(r.Uint32())
		}
		// keep the first byte off every signature
		data[0] = 0x00

		_, err := c.Classify(data)
		assert.ErrorIs(t, err, models.ErrNotAnImage)
	}
}

func TestFormatClassifier_ClassifyBase64Text(t *testing.T) {
	c := NewFormatClassifier()

	kind, err := c.ClassifyBase64Text(padTo([]byte("iVBORw0KGgoAAAANSUhEUg"), 150))
	require.NoError(t, err)
	assert.Equal(t, models.ImagePNG, kind)

	kind, err = c.ClassifyBase64Text(padTo([]byte("/9j/4AAQSkZJRg"), 150))
	require.NoError(t, err)
	assert.Equal(t, models.ImageJPEG, kind)

	_, err = c.ClassifyBase64Text(padTo([]byte("hello world"), 150))
	assert.ErrorIs(t, err, models.ErrNotAnImage)
}
