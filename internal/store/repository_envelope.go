package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/utils"
	"github.com/MKhiriev/go-crypter/models"
)

type envelopeRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func NewEnvelopeRepository(db *DB, logger *logger.Logger) EnvelopeRepository {
	return &envelopeRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}
}

func (r *envelopeRepository) Save(ctx context.Context, record models.EnvelopeRecord) (models.EnvelopeRecord, error) {
	log := r.logger

	if record.ID == "" {
		record.ID = r.ids.Generate()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}

	result, err := r.DB.ExecContext(ctx, saveEnvelope,
		record.ID,
		record.Name,
		string(record.Scheme),
		record.Chunks,
		record.Size,
		record.Body,
		record.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.Save").
			Str("id", record.ID).
			Msg("failed to execute insert for envelope")
		return models.EnvelopeRecord{}, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().
			Str("func", "envelopeRepository.Save").
			Str("id", record.ID).
			Msg("envelope insert affected no rows")
		return models.EnvelopeRecord{}, fmt.Errorf("%w: %w", models.ErrIO, ErrEnvelopeNotSaved)
	}

	return record, nil
}

func (r *envelopeRepository) Get(ctx context.Context, id string) (models.EnvelopeRecord, error) {
	log := r.logger

	var (
		item   models.EnvelopeRecord
		scheme string
	)
	scanErr := r.DB.QueryRowContext(ctx, getEnvelope, id).Scan(
		&item.ID,
		&item.Name,
		&scheme,
		&item.Chunks,
		&item.Size,
		&item.Body,
		&item.CreatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.EnvelopeRecord{}, ErrEnvelopeNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "envelopeRepository.Get").
			Str("id", id).
			Msg("failed to scan envelope row")
		return models.EnvelopeRecord{}, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrScanningRow, scanErr)
	}
	item.Scheme = models.Scheme(scheme)

	return item, nil
}

func (r *envelopeRepository) List(ctx context.Context, filter models.EnvelopeFilter) ([]models.EnvelopeRecord, error) {
	log := r.logger

	query, args, err := buildListEnvelopesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "envelopeRepository.List").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.List").
			Msg("failed to execute query for listing envelopes")
		return nil, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.EnvelopeRecord, 0)
	for rows.Next() {
		var (
			item   models.EnvelopeRecord
			scheme string
		)
		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&scheme,
			&item.Chunks,
			&item.Size,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "envelopeRepository.List").
				Msg("failed to scan envelope row")
			return nil, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrScanningRow, scanErr)
		}
		item.Scheme = models.Scheme(scheme)

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "envelopeRepository.List").
			Msg("error iterating envelope rows")
		return nil, fmt.Errorf("%w: %w: %w", models.ErrIO, ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *envelopeRepository) Delete(ctx context.Context, id string) error {
	log := r.logger

	result, err := r.DB.ExecContext(ctx, deleteEnvelope, id)
	if err != nil {
		log.Err(err).
			Str("func", "envelopeRepository.Delete").
			Str("id", id).
			Msg("failed to execute delete for envelope")
		return fmt.Errorf("%w: %w: %w", models.ErrIO, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrIO, ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEnvelopeNotFound
	}

	return nil
}
