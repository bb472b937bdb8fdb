// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer of the crypter core. Callers match
// against these values with [errors.Is]; wrapped errors always unwrap to
// exactly one of them.
var (
	// ErrInvalidInput is returned when a password or a source is missing
	// before an operation starts. No resources are touched.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceTooLarge is returned when the payload exceeds the configured
	// size ceiling. It is reported before any chunk is dispatched.
	ErrSourceTooLarge = errors.New("source too large")

	// ErrIO is returned when reading, writing or deleting source, sink or
	// temporary files fails.
	ErrIO = errors.New("i/o failure")

	// ErrDecryptionFailed is returned when the cipher rejects a chunk or the
	// envelope cannot be split into chunks.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrNotAnImage is returned when decryption nominally succeeded but the
	// plaintext does not look like a supported image container.
	ErrNotAnImage = errors.New("decrypted data is not a valid image")

	// ErrTimeout is returned when a pipeline run exceeds its deadline.
	ErrTimeout = errors.New("operation timed out")

	// ErrCancelled is returned when the caller cancels a pipeline run.
	ErrCancelled = errors.New("operation cancelled")

	// ErrNotFound is returned when an archived envelope does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOperationInProgress is returned when a session already has an
	// encrypt or decrypt operation in flight.
	ErrOperationInProgress = errors.New("another operation is in progress")
)

// PipelineError describes the first failure of a pipeline run. Chunk is the
// ordinal of the failing chunk, or -1 when the failure is not tied to one.
type PipelineError struct {
	Op    string
	Chunk int
	Err   error
}

func (e *PipelineError) Error() string {
	if e.Chunk >= 0 {
		return fmt.Sprintf("%s [chunk %d]: %v", e.Op, e.Chunk, e.Err)
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError creates a new PipelineError.
func NewPipelineError(op string, chunk int, err error) *PipelineError {
	return &PipelineError{
		Op:    op,
		Chunk: chunk,
		Err:   err,
	}
}
