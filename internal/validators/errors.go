package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crypter/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPassword = fmt.Errorf("%w: password is required", models.ErrInvalidInput)
	ErrEmptySource   = fmt.Errorf("%w: source is required", models.ErrInvalidInput)
	ErrEmptyEnvelope = fmt.Errorf("%w: envelope is required", models.ErrInvalidInput)
)
