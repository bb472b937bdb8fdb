// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crypter/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldPassword targets the user password of a request.
	FieldPassword = "password"

	// FieldSourceID targets the identity of the byte source to encrypt.
	FieldSourceID = "source_id"

	// FieldEnvelope targets the envelope text to decrypt.
	FieldEnvelope = "envelope"
)

// RequestValidator checks encrypt and decrypt requests before any resource
// is touched. Every failure wraps models.ErrInvalidInput.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptRequest:
		return v.validateEncryptRequest(ctx, value, fields...)
	case *models.EncryptRequest:
		return v.validateEncryptRequest(ctx, *value, fields...)

	case models.DecryptRequest:
		return v.validateDecryptRequest(ctx, value, fields...)
	case *models.DecryptRequest:
		return v.validateDecryptRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateEncryptRequest(ctx context.Context, request models.EncryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceID:
			if strings.TrimSpace(request.SourceID) == "" {
				return ErrEmptySource
			}
		case FieldPassword:
			if strings.TrimSpace(request.Password) == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDecryptRequest(ctx context.Context, request models.DecryptRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvelope, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEnvelope:
			if strings.TrimSpace(request.Envelope) == "" {
				return ErrEmptyEnvelope
			}
		case FieldPassword:
			if strings.TrimSpace(request.Password) == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
