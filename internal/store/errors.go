package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEnvelopeNotFound is returned when a Get or Delete targets an archive
	// record that does not exist.
	ErrEnvelopeNotFound = fmt.Errorf("%w: envelope was not found", models.ErrNotFound)

	// ErrEnvelopeNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrEnvelopeNotSaved = errors.New("envelope was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. All of them are additionally wrapped with models.ErrIO.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan envelope row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan envelope rows")
)
