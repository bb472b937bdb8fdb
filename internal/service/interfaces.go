package service

import (
	"context"

	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ImageCrypterService encrypts picked images into text envelopes and turns
// envelopes back into validated images. At most one encrypt or decrypt
// operation runs per session; a second one fails with
// models.ErrOperationInProgress.
type ImageCrypterService interface {
	// EncryptImage encrypts the picked media with password. A repeated
	// request for the same media, scheme and password is served from the
	// ciphertext cache.
	EncryptImage(ctx context.Context, media models.SelectedMedia, password string) (models.EncryptedImage, error)

	// DecryptImage decrypts a text envelope and checks that the plaintext
	// is a JPEG, PNG or GIF. Envelopes of older releases, which encrypted
	// the base64 text of the image, are accepted too.
	DecryptImage(ctx context.Context, envelope string, password string) (models.DecryptedImage, error)

	// EncryptFile streams the file at src into a binary envelope at dst.
	// Output is staged in a temp file and renamed into place on success.
	EncryptFile(ctx context.Context, src, dst string, password string) (*pipeline.Result, error)

	// DecryptFile streams the binary or text envelope at src into dst.
	DecryptFile(ctx context.Context, src, dst string, password string) (*pipeline.Result, error)

	// SaveDecryptedImage hands a decrypted image to the media library and
	// returns where it was stored.
	SaveDecryptedImage(ctx context.Context, image models.DecryptedImage) (string, error)

	// ClearCaches drops every cached envelope and raw source.
	ClearCaches()
}

// TextCrypterService encrypts and decrypts UTF-8 text.
type TextCrypterService interface {
	EncryptText(ctx context.Context, text string, password string) (string, error)

	// DecryptText fails with models.ErrDecryptionFailed when the plaintext
	// is empty or not valid UTF-8, which is what a wrong direct-scheme key
	// usually produces.
	DecryptText(ctx context.Context, envelope string, password string) (string, error)
}

// EnvelopeArchiveService keeps envelopes outside of a session: as exported
// .txt files and in the local archive database.
type EnvelopeArchiveService interface {
	Export(ctx context.Context, envelope string) (string, error)
	Import(ctx context.Context, path string) (string, error)

	// Archive stores envelope under name. The envelope must be a well
	// formed text envelope; nothing is decrypted.
	Archive(ctx context.Context, name string, envelope string) (models.EnvelopeRecord, error)
	List(ctx context.Context, filter models.EnvelopeFilter) ([]models.EnvelopeRecord, error)
	Load(ctx context.Context, id string) (models.EnvelopeRecord, error)
	Remove(ctx context.Context, id string) error
}
