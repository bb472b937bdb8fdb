// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-crypter/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryNone},
		{"invalid input", models.ErrInvalidInput, CategoryInvalidInput},
		{"too large", fmt.Errorf("encrypt: %w", models.ErrSourceTooLarge), CategorySourceTooLarge},
		{"io", fmt.Errorf("read: %w", models.ErrIO), CategoryIO},
		{"decryption", models.NewPipelineError("decrypt", 3, models.ErrDecryptionFailed), CategoryDecryptionFailed},
		{"not an image", models.ErrNotAnImage, CategoryNotAnImage},
		{"timeout", models.NewPipelineError("encrypt", -1, models.ErrTimeout), CategoryTimeout},
		{"cancelled", models.ErrCancelled, CategoryCancelled},
		{"busy", models.ErrOperationInProgress, CategoryBusy},
		{"not found", fmt.Errorf("load: %w", models.ErrNotFound), CategoryNotFound},
		{"unknown", errors.New("boom"), CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestMessage_EveryCategoryIsDistinct(t *testing.T) {
	seen := map[string]Category{}
	for c := CategoryInvalidInput; c <= CategoryInternal; c++ {
		msg := Message(c)
		assert.NotEmpty(t, msg, "category %d has no message", c)
		if prev, ok := seen[msg]; ok {
			t.Errorf("categories %d and %d share message %q", prev, c, msg)
		}
		seen[msg] = c
	}
}

func TestMessage_UnknownCategoryFallsBack(t *testing.T) {
	assert.Equal(t, MsgInternal, Message(Category(99)))
}
