// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app maps core errors to user-facing message categories.
//
// The core never formats errors for people; it returns taxonomy values from
// the models package. Front ends call [Classify] to obtain a [Category] and
// [Message] to obtain consistent wording for it.
package app

import (
	"errors"

	"github.com/MKhiriev/go-crypter/models"
)

// Category is a distinct class of failure presented to the user.
type Category int

const (
	CategoryNone Category = iota
	CategoryInvalidInput
	CategorySourceTooLarge
	CategoryIO
	CategoryDecryptionFailed
	CategoryNotAnImage
	CategoryTimeout
	CategoryCancelled
	CategoryBusy
	CategoryNotFound
	CategoryInternal
)

const (
	// MsgInvalidInput is shown when the password or the source is missing.
	MsgInvalidInput = "please provide both the data and the secret key"

	// MsgSourceTooLarge is shown when the picked image exceeds the ceiling.
	MsgSourceTooLarge = "image is too large, please select a smaller image or reduce quality"

	// MsgIO is shown when a file could not be read or written.
	MsgIO = "storage error, please check available space and permissions"

	// MsgDecryptionFailed is shown when the key is wrong or the text is
	// corrupted.
	MsgDecryptionFailed = "invalid key or corrupted text, please check your key and encrypted text"

	// MsgNotAnImage is shown when the decrypted data is not an image.
	MsgNotAnImage = "the decrypted data is not a valid image, please check your encrypted text"

	// MsgTimeout is shown when an operation ran past its deadline.
	MsgTimeout = "the operation took too long, try with a smaller image"

	// MsgCancelled is shown when the user aborted the operation.
	MsgCancelled = "the operation was cancelled"

	// MsgBusy is shown when another operation is still running.
	MsgBusy = "please wait for the current operation to finish"

	// MsgNotFound is shown when an archive id matches no envelope.
	MsgNotFound = "no archived envelope with that id, run archive-list to see the stored ones"

	// MsgInternal is the fallback for unexpected failures.
	MsgInternal = "something went wrong, please try again"
)

var categoryMessages = map[Category]string{
	CategoryNone:             "",
	CategoryInvalidInput:     MsgInvalidInput,
	CategorySourceTooLarge:   MsgSourceTooLarge,
	CategoryIO:               MsgIO,
	CategoryDecryptionFailed: MsgDecryptionFailed,
	CategoryNotAnImage:       MsgNotAnImage,
	CategoryTimeout:          MsgTimeout,
	CategoryCancelled:        MsgCancelled,
	CategoryBusy:             MsgBusy,
	CategoryNotFound:         MsgNotFound,
	CategoryInternal:         MsgInternal,
}

// Classify returns the category of err. A nil error yields CategoryNone and
// anything outside the taxonomy yields CategoryInternal.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, models.ErrInvalidInput):
		return CategoryInvalidInput
	case errors.Is(err, models.ErrSourceTooLarge):
		return CategorySourceTooLarge
	case errors.Is(err, models.ErrNotAnImage):
		return CategoryNotAnImage
	case errors.Is(err, models.ErrDecryptionFailed):
		return CategoryDecryptionFailed
	case errors.Is(err, models.ErrTimeout):
		return CategoryTimeout
	case errors.Is(err, models.ErrCancelled):
		return CategoryCancelled
	case errors.Is(err, models.ErrOperationInProgress):
		return CategoryBusy
	case errors.Is(err, models.ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, models.ErrIO):
		return CategoryIO
	default:
		return CategoryInternal
	}
}

// Message returns the user-facing text of a category.
func Message(c Category) string {
	if msg, ok := categoryMessages[c]; ok {
		return msg
	}
	return MsgInternal
}
