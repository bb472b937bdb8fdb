package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crypter/internal/config"
	"github.com/MKhiriev/go-crypter/internal/logger"
)

// Storages groups every persistence collaborator of the crypter services.
type Storages struct {
	// EnvelopeRepository is the sqlite-backed envelope archive.
	EnvelopeRepository EnvelopeRepository
	// EnvelopeFiles exports and imports envelopes as .txt files.
	EnvelopeFiles EnvelopeFiles
	// MediaLibrary receives decrypted images.
	MediaLibrary MediaLibrary

	db *DB
}

// NewStorages initialises the storage layer. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the file-system stores to cfg.Files.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		EnvelopeRepository: NewEnvelopeRepository(db, logger),
		EnvelopeFiles:      NewEnvelopeFileStore(cfg.Files.ExportDir),
		MediaLibrary:       NewDirectoryMediaLibrary(cfg.Files.MediaDir),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
