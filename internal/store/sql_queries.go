// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crypter/models"
)

const (
	saveEnvelope = `
		INSERT INTO envelopes (
			id,
			name,
			scheme,
			chunks,
			size,
			body,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?);`

	getEnvelope = `
		SELECT
			id,
			name,
			scheme,
			chunks,
			size,
			body,
			created_at
		FROM envelopes
		WHERE id = ?;`

	deleteEnvelope = `DELETE FROM envelopes WHERE id = ?;`
)

// buildListEnvelopesQuery selects archive records without their bodies,
// newest first, optionally narrowed by scheme and limited in count.
func buildListEnvelopesQuery(filter models.EnvelopeFilter) (string, []any, error) {
	query := sq.Select("id", "name", "scheme", "chunks", "size", "created_at").
		From("envelopes").
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Question)

	if filter.Scheme != "" {
		query = query.Where(sq.Eq{"scheme": string(filter.Scheme)})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}
