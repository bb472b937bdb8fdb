// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/internal/validators"
	"github.com/MKhiriev/go-crypter/models"
)

type textCrypterService struct {
	runner    pipeline.Runner
	guard     *Guard
	validator validators.Validator
	scheme    models.Scheme

	logger *logger.Logger
}

func NewTextCrypterService(runner pipeline.Runner, guard *Guard, scheme models.Scheme, logger *logger.Logger) TextCrypterService {
	if scheme == "" {
		scheme = models.SchemePBKDF2
	}
	return &textCrypterService{
		runner:    runner,
		guard:     guard,
		validator: validators.NewRequestValidator(),
		scheme:    scheme,
		logger:    logger,
	}
}

func (s *textCrypterService) EncryptText(ctx context.Context, text string, password string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: no text", models.ErrInvalidInput)
	}
	if err := s.validator.Validate(ctx, models.EncryptRequest{Password: password}, validators.FieldPassword); err != nil {
		return "", err
	}
	if err := s.guard.Acquire(); err != nil {
		return "", err
	}
	defer s.guard.Release()

	res, err := s.runner.Run(ctx, pipeline.Request{
		Source:    source.NewMemorySource("text", []byte(text)),
		Password:  password,
		Direction: pipeline.Encrypt,
		Scheme:    s.scheme,
		Format:    envelope.FormatText,
	})
	if err != nil {
		return "", err
	}

	return string(res.Data), nil
}

func (s *textCrypterService) DecryptText(ctx context.Context, text string, password string) (string, error) {
	if err := s.validator.Validate(ctx, models.DecryptRequest{Envelope: text, Password: password}); err != nil {
		return "", err
	}
	if err := s.guard.Acquire(); err != nil {
		return "", err
	}
	defer s.guard.Release()

	res, err := s.runner.Run(ctx, pipeline.Request{
		Source:    source.NewMemorySource("envelope", []byte(strings.TrimSpace(text))),
		Password:  password,
		Direction: pipeline.Decrypt,
	})
	if err != nil {
		return "", err
	}

	if len(res.Data) == 0 || !utf8.Valid(res.Data) {
		return "", fmt.Errorf("%w: plaintext is not valid text", models.ErrDecryptionFailed)
	}

	return string(res.Data), nil
}
