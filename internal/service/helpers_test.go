package service

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-crypter/internal/cache"
	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/pipeline"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/internal/store"
	"github.com/MKhiriev/go-crypter/models"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// pngBytes returns n bytes starting with the PNG signature.
func pngBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := bytes.Clone(pngSignature)
	for len(out) < n {
		out = append(out, byte(r.Uint32()))
	}
	return out
}

func newTestCaches(t *testing.T) *cache.Caches {
	t.Helper()
	c, err := cache.New(cache.Options{Capacity: 5, RawTTL: time.Minute})
	require.NoError(t, err)
	return c
}

// fakeEnvelope is a well-formed text envelope with the given chunk count.
func fakeEnvelope(chunks int) string {
	h := envelope.Header{Scheme: models.SchemePBKDF2, Salt: bytes.Repeat([]byte{7}, 16), Chunks: chunks}
	var sb strings.Builder
	sb.WriteString(envelope.TextPrefix(h))
	for i := range chunks {
		sb.WriteString(envelope.TextChunk(i, []byte{byte(i), 1, 2, 3}))
	}
	return sb.String()
}

func newTestImageService(t *testing.T, runner pipeline.Runner, opener source.MediaOpener, media store.MediaLibrary) (*imageCrypterService, *cache.Caches) {
	t.Helper()
	caches := newTestCaches(t)
	svc := NewImageCrypterService(runner, caches, opener, media, NewGuard(), ImageSettings{
		Scheme:        models.SchemePBKDF2,
		MaxSourceSize: 50 << 20,
		TempDir:       t.TempDir(),
	}, logger.Nop())
	return svc.(*imageCrypterService), caches
}

func realPipeline() *pipeline.Pipeline {
	return pipeline.NewPipeline(pipeline.Options{ChunkSize: 1 << 20, Concurrency: 4}, logger.Nop())
}
