// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/store"
	"github.com/MKhiriev/go-crypter/internal/validators"
	"github.com/MKhiriev/go-crypter/models"
)

type envelopeArchiveService struct {
	repository store.EnvelopeRepository
	files      store.EnvelopeFiles
	validator  validators.Validator

	logger *logger.Logger
}

func NewEnvelopeArchiveService(repository store.EnvelopeRepository, files store.EnvelopeFiles, logger *logger.Logger) EnvelopeArchiveService {
	return &envelopeArchiveService{
		repository: repository,
		files:      files,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

func (s *envelopeArchiveService) Export(ctx context.Context, text string) (string, error) {
	if err := s.validator.Validate(ctx, models.DecryptRequest{Envelope: text}, validators.FieldEnvelope); err != nil {
		return "", err
	}
	return s.files.Export(ctx, strings.TrimSpace(text))
}

func (s *envelopeArchiveService) Import(ctx context.Context, path string) (string, error) {
	return s.files.Import(ctx, path)
}

func (s *envelopeArchiveService) Archive(ctx context.Context, name string, text string) (models.EnvelopeRecord, error) {
	if err := s.validator.Validate(ctx, models.DecryptRequest{Envelope: text}, validators.FieldEnvelope); err != nil {
		return models.EnvelopeRecord{}, err
	}

	text = strings.TrimSpace(text)
	info, err := envelope.Inspect(text)
	if err != nil {
		return models.EnvelopeRecord{}, err
	}

	record, err := s.repository.Save(ctx, models.EnvelopeRecord{
		Name:   strings.TrimSpace(name),
		Scheme: info.Scheme,
		Chunks: info.Chunks,
		Size:   int64(len(text)),
		Body:   text,
	})
	if err != nil {
		return models.EnvelopeRecord{}, err
	}

	s.logger.Debug().
		Str("func", "envelopeArchiveService.Archive").
		Str("id", record.ID).
		Str("scheme", string(record.Scheme)).
		Msg("envelope archived")

	return record, nil
}

func (s *envelopeArchiveService) List(ctx context.Context, filter models.EnvelopeFilter) ([]models.EnvelopeRecord, error) {
	return s.repository.List(ctx, filter)
}

func (s *envelopeArchiveService) Load(ctx context.Context, id string) (models.EnvelopeRecord, error) {
	return s.repository.Get(ctx, id)
}

func (s *envelopeArchiveService) Remove(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
