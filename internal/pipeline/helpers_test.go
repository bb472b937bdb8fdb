package pipeline

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-crypter/internal/crypto"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/models"
)

// fastDeriver stands in for PBKDF2 so property tests stay quick. It keeps
// the salt handling of the real salted schemes.
type fastDeriver struct{}

func (fastDeriver) DeriveKey(password string, salt []byte) (*crypto.DerivedKey, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", models.ErrInvalidInput)
	}
	if len(salt) == 0 {
		salt = make([]byte, crypto.SaltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, err
		}
	}
	sum := sha256.Sum256(append([]byte(password), salt...))
	return &crypto.DerivedKey{Scheme: models.SchemePBKDF2, Key: sum[:], Salt: salt}, nil
}

// hookCodec counts calls and can fail or stall a chunk.
type hookCodec struct {
	crypto.ChunkCodec
	calls atomic.Int64
	hook  func(i int) error
}

func (c *hookCodec) EncryptChunk(i, total int, plain []byte, key *crypto.DerivedKey) ([]byte, error) {
	c.calls.Add(1)
	if c.hook != nil {
		if err := c.hook(i); err != nil {
			return nil, err
		}
	}
	return c.ChunkCodec.EncryptChunk(i, total, plain, key)
}

func (c *hookCodec) DecryptChunk(i, total int, sealed []byte, key *crypto.DerivedKey) ([]byte, error) {
	c.calls.Add(1)
	if c.hook != nil {
		if err := c.hook(i); err != nil {
			return nil, err
		}
	}
	return c.ChunkCodec.DecryptChunk(i, total, sealed, key)
}

// newTestPipeline builds a pipeline whose pbkdf2 scheme uses fastDeriver
// and codec. Other schemes resolve normally.
func newTestPipeline(opts Options, codec *hookCodec) *Pipeline {
	opts.Suites = func(s models.Scheme) (crypto.Suite, error) {
		if s == models.SchemePBKDF2 {
			return crypto.Suite{Scheme: s, Deriver: fastDeriver{}, Codec: codec}, nil
		}
		return crypto.NewSuite(s)
	}
	return NewPipeline(opts, logger.Nop())
}

func newHookCodec() *hookCodec {
	return &hookCodec{ChunkCodec: crypto.NewGCMCodec()}
}
