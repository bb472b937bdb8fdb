package service

import (
	"github.com/MKhiriev/go-crypter/internal/cache"
	"github.com/MKhiriev/go-crypter/internal/config"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/internal/store"
	"github.com/MKhiriev/go-crypter/models"
)

// Services is one crypter session. Image and text operations share a
// single in-flight guard.
type Services struct {
	ImageCrypterService    ImageCrypterService
	TextCrypterService     TextCrypterService
	EnvelopeArchiveService EnvelopeArchiveService
}

func NewServices(storages *store.Storages, runner pipeline.Runner, caches *cache.Caches, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	scheme, err := models.ParseScheme(cfg.Crypto.Scheme)
	if err != nil {
		return nil, err
	}

	guard := NewGuard()
	return &Services{
		ImageCrypterService: NewImageCrypterService(runner, caches, source.NewFileMediaOpener(), storages.MediaLibrary, guard, ImageSettings{
			Scheme:        scheme,
			MaxSourceSize: cfg.Crypto.MaxSourceSize.Int64(),
			TempDir:       cfg.Storage.Files.TempDir,
		}, logger),
		TextCrypterService:     NewTextCrypterService(runner, guard, scheme, logger),
		EnvelopeArchiveService: NewEnvelopeArchiveService(storages.EnvelopeRepository, storages.EnvelopeFiles, logger),
	}, nil
}
