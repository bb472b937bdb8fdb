// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImageKind is the container format detected in a decrypted payload.
type ImageKind string

const (
	ImageJPEG ImageKind = "jpeg"
	ImagePNG  ImageKind = "png"
	ImageGIF  ImageKind = "gif"
)

// MIME returns the media type of the image kind, or an empty string for an
// unknown kind.
func (k ImageKind) MIME() string {
	switch k {
	case ImageJPEG:
		return "image/jpeg"
	case ImagePNG:
		return "image/png"
	case ImageGIF:
		return "image/gif"
	default:
		return ""
	}
}

// Extension returns the file extension (without dot) used when the image is
// handed to the media library.
func (k ImageKind) Extension() string {
	switch k {
	case ImagePNG:
		return "png"
	case ImageGIF:
		return "gif"
	default:
		return "jpg"
	}
}

// DecryptedImage is a validated plaintext image ready for display or saving.
type DecryptedImage struct {
	Data []byte
	Kind ImageKind
}

// EncryptedImage is the textual envelope produced for a picked image.
type EncryptedImage struct {
	Envelope  string
	Scheme    Scheme
	Chunks    int
	FromCache bool
}
