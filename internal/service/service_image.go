// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-crypter/internal/cache"
	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/internal/store"
	"github.com/MKhiriev/go-crypter/internal/utils"
	"github.com/MKhiriev/go-crypter/internal/validators"
	"github.com/MKhiriev/go-crypter/models"
)

// ImageSettings are the parts of the configuration the image service reads.
type ImageSettings struct {
	// Scheme is used for new envelopes and is part of the cache key.
	Scheme models.Scheme
	// MaxSourceSize bounds what is loaded into the raw cache. Larger
	// sources go to the runner unread, which rejects them.
	MaxSourceSize int64
	// TempDir holds staged output of file runs.
	TempDir string
}

type imageCrypterService struct {
	runner     pipeline.Runner
	caches     *cache.Caches
	opener     source.MediaOpener
	media      store.MediaLibrary
	guard      *Guard
	validator  validators.Validator
	classifier validators.Classifier
	settings   ImageSettings
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

func NewImageCrypterService(
	runner pipeline.Runner,
	caches *cache.Caches,
	opener source.MediaOpener,
	media store.MediaLibrary,
	guard *Guard,
	settings ImageSettings,
	logger *logger.Logger,
) ImageCrypterService {
	if settings.Scheme == "" {
		settings.Scheme = models.SchemePBKDF2
	}
	return &imageCrypterService{
		runner:     runner,
		caches:     caches,
		opener:     opener,
		media:      media,
		guard:      guard,
		validator:  validators.NewRequestValidator(),
		classifier: validators.NewFormatClassifier(),
		settings:   settings,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (s *imageCrypterService) EncryptImage(ctx context.Context, media models.SelectedMedia, password string) (models.EncryptedImage, error) {
	if err := s.validator.Validate(ctx, models.EncryptRequest{SourceID: media.URI, Password: password}); err != nil {
		return models.EncryptedImage{}, err
	}
	if err := s.guard.Acquire(); err != nil {
		return models.EncryptedImage{}, err
	}
	defer s.guard.Release()

	scheme := s.settings.Scheme
	if env, ok := s.caches.Ciphertext.Get(media.URI, scheme, password); ok {
		s.logger.Debug().Str("func", "imageCrypterService.EncryptImage").Msg("ciphertext cache hit")
		info, err := envelope.Inspect(env)
		if err == nil {
			return models.EncryptedImage{Envelope: env, Scheme: scheme, Chunks: info.Chunks, FromCache: true}, nil
		}
		s.logger.Warn().Err(err).Str("func", "imageCrypterService.EncryptImage").Msg("dropping unreadable cached envelope")
	}

	src, release, err := s.openSource(ctx, media)
	if err != nil {
		return models.EncryptedImage{}, err
	}
	defer release()

	res, err := s.runner.Run(ctx, pipeline.Request{
		Source:    src,
		Password:  password,
		Direction: pipeline.Encrypt,
		Scheme:    scheme,
		Format:    envelope.FormatText,
	})
	if err != nil {
		return models.EncryptedImage{}, err
	}

	env := string(res.Data)
	s.caches.Ciphertext.Put(media.URI, scheme, password, env)

	return models.EncryptedImage{Envelope: env, Scheme: res.Scheme, Chunks: res.Chunks}, nil
}

// openSource serves the picked media from the raw cache or opens it and
// loads it into the cache. The returned func releases the source.
func (s *imageCrypterService) openSource(ctx context.Context, media models.SelectedMedia) (source.ByteSource, func(), error) {
	noop := func() {}

	if data, ok := s.caches.Raw.Get(media.URI); ok {
		return source.NewMemorySource(media.URI, data), noop, nil
	}

	src, err := s.opener.Open(ctx, media)
	if err != nil {
		return nil, noop, err
	}
	release := func() {
		if c, ok := src.(io.Closer); ok {
			if err := c.Close(); err != nil {
				s.logger.Warn().Err(err).Str("func", "imageCrypterService.openSource").Msg("failed to close source")
			}
		}
	}

	if s.settings.MaxSourceSize > 0 && src.Length() > s.settings.MaxSourceSize {
		return src, release, nil
	}

	data, err := source.ReadAll(src)
	release()
	if err != nil {
		return nil, noop, err
	}
	s.caches.Raw.Put(media.URI, data)

	return source.NewMemorySource(media.URI, data), noop, nil
}

func (s *imageCrypterService) DecryptImage(ctx context.Context, text string, password string) (models.DecryptedImage, error) {
	if err := s.validator.Validate(ctx, models.DecryptRequest{Envelope: text, Password: password}); err != nil {
		return models.DecryptedImage{}, err
	}
	if err := s.guard.Acquire(); err != nil {
		return models.DecryptedImage{}, err
	}
	defer s.guard.Release()

	res, err := s.runner.Run(ctx, pipeline.Request{
		Source:    source.NewMemorySource("envelope", []byte(strings.TrimSpace(text))),
		Password:  password,
		Direction: pipeline.Decrypt,
	})
	if err != nil {
		return models.DecryptedImage{}, err
	}

	return s.toImage(res.Data)
}

// toImage accepts raw image bytes, or the base64 text of an image as
// written by older releases.
func (s *imageCrypterService) toImage(plain []byte) (models.DecryptedImage, error) {
	kind, err := s.classifier.Classify(plain)
	if err == nil {
		return models.DecryptedImage{Data: plain, Kind: kind}, nil
	}

	if _, b64Err := s.classifier.ClassifyBase64Text(plain); b64Err != nil {
		return models.DecryptedImage{}, err
	}

	decoded, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(plain)))
	if decErr != nil {
		return models.DecryptedImage{}, fmt.Errorf("%w: base64 payload: %w", models.ErrNotAnImage, decErr)
	}
	kind, err = s.classifier.Classify(decoded)
	if err != nil {
		return models.DecryptedImage{}, err
	}

	return models.DecryptedImage{Data: decoded, Kind: kind}, nil
}

func (s *imageCrypterService) EncryptFile(ctx context.Context, src, dst string, password string) (*pipeline.Result, error) {
	return s.runFile(ctx, pipeline.Encrypt, src, dst, password)
}

func (s *imageCrypterService) DecryptFile(ctx context.Context, src, dst string, password string) (*pipeline.Result, error) {
	return s.runFile(ctx, pipeline.Decrypt, src, dst, password)
}

func (s *imageCrypterService) runFile(ctx context.Context, direction pipeline.Direction, srcPath, dstPath string, password string) (*pipeline.Result, error) {
	log := s.logger

	if err := s.validator.Validate(ctx, models.EncryptRequest{SourceID: srcPath, Password: password}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(dstPath) == "" {
		return nil, fmt.Errorf("%w: no destination", models.ErrInvalidInput)
	}
	if err := s.guard.Acquire(); err != nil {
		return nil, err
	}
	defer s.guard.Release()

	src, err := source.OpenFile(srcPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn().Err(err).Str("func", "imageCrypterService.runFile").Msg("failed to close source file")
		}
	}()

	sink, err := source.NewTempFileSink(s.settings.TempDir, direction.String(), s.ids)
	if err != nil {
		return nil, err
	}
	discard := func() {
		if err := sink.Discard(); err != nil {
			log.Warn().Err(err).Str("func", "imageCrypterService.runFile").Msg("failed to remove temp file")
		}
	}

	res, err := s.runner.Run(ctx, pipeline.Request{
		Source:    src,
		Password:  password,
		Direction: direction,
		Scheme:    s.settings.Scheme,
		Format:    envelope.FormatBinary,
		Sink:      sink,
	})
	if err != nil {
		discard()
		return nil, err
	}

	if err = sink.Commit(dstPath); err != nil {
		discard()
		return nil, err
	}

	return res, nil
}

func (s *imageCrypterService) SaveDecryptedImage(ctx context.Context, image models.DecryptedImage) (string, error) {
	if len(image.Data) == 0 {
		return "", fmt.Errorf("%w: no image data", models.ErrInvalidInput)
	}
	if image.Kind == "" {
		kind, err := s.classifier.Classify(image.Data)
		if err != nil {
			return "", err
		}
		image.Kind = kind
	}

	return s.media.SaveImage(ctx, image.Data, image.Kind)
}

func (s *imageCrypterService) ClearCaches() {
	s.caches.Clear()
	s.logger.Debug().Str("func", "imageCrypterService.ClearCaches").Msg("caches cleared")
}
