package pipeline

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func randomBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.Uint32())
	}
	return out
}

func encrypt(t require.TestingT, p Runner, data []byte, password string, scheme models.Scheme, format envelope.Format) *Result {
	res, err := p.Run(context.Background(), Request{
		Source:    source.NewMemorySource("payload", data),
		Password:  password,
		Direction: Encrypt,
		Scheme:    scheme,
		Format:    format,
	})
	require.NoError(t, err)
	return res
}

func decrypt(p Runner, envelopeData []byte, password string) (*Result, error) {
	return p.Run(context.Background(), Request{
		Source:    source.NewMemorySource("envelope", envelopeData),
		Password:  password,
		Direction: Decrypt,
	})
}

// ── round trips ───────────────────────────────────────────────────────────────

func TestPipeline_RoundTrip_AllSchemesAndFormats(t *testing.T) {
	data := randomBytes(10_000, 1)

	for _, scheme := range []models.Scheme{models.SchemeDirect, models.SchemePBKDF2, models.SchemeArgon2} {
		for _, format := range []envelope.Format{envelope.FormatText, envelope.FormatBinary} {
			t.Run(string(scheme)+"/"+format.String(), func(t *testing.T) {
				p := NewPipeline(Options{ChunkSize: 3000, Concurrency: 4}, logger.Nop())

				enc := encrypt(t, p, data, "pw", scheme, format)
				assert.Equal(t, 4, enc.Chunks)
				assert.Equal(t, scheme, enc.Scheme)
				assert.Equal(t, int64(len(enc.Data)), enc.OutputBytes)

				dec, err := decrypt(p, enc.Data, "pw")
				require.NoError(t, err)
				assert.Equal(t, data, dec.Data)
				assert.Equal(t, scheme, dec.Scheme)
				assert.Equal(t, 4, dec.Chunks)
			})
		}
	}
}

func TestPipeline_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 5000).Draw(rt, "data")
		password := rapid.StringN(1, 20, -1).Draw(rt, "password")
		chunkSize := rapid.IntRange(1, 1024).Draw(rt, "chunkSize")
		concurrency := rapid.IntRange(1, 8).Draw(rt, "concurrency")
		format := rapid.SampledFrom([]envelope.Format{envelope.FormatText, envelope.FormatBinary}).Draw(rt, "format")

		p := newTestPipeline(Options{ChunkSize: chunkSize, Concurrency: concurrency}, newHookCodec())

		enc := encrypt(rt, p, data, password, models.SchemePBKDF2, format)
		dec, err := decrypt(p, enc.Data, password)
		require.NoError(rt, err)
		require.True(rt, bytes.Equal(data, dec.Data))
	})
}

func TestPipeline_ChunkOrderInvariance(t *testing.T) {
	data := randomBytes(64_000, 2)
	codec := newHookCodec()
	// stall early chunks so later ones complete first
	codec.hook = func(i int) error {
		if i%4 == 0 {
			time.Sleep(2 * time.Millisecond)
		}
		return nil
	}

	sequential := newTestPipeline(Options{ChunkSize: 1000, Concurrency: 1}, codec)
	parallel := newTestPipeline(Options{ChunkSize: 1000, Concurrency: 4, Executor: NewParallelExecutor(4)}, codec)

	encSeq := encrypt(t, sequential, data, "pw", models.SchemePBKDF2, envelope.FormatText)
	encPar := encrypt(t, parallel, data, "pw", models.SchemePBKDF2, envelope.FormatText)
	assert.Equal(t, encSeq.Chunks, encPar.Chunks)

	for _, enc := range []*Result{encSeq, encPar} {
		for _, p := range []*Pipeline{sequential, parallel} {
			dec, err := decrypt(p, enc.Data, "pw")
			require.NoError(t, err)
			assert.Equal(t, data, dec.Data)
		}
	}
}

func TestPipeline_EmptyPayload(t *testing.T) {
	p := newTestPipeline(Options{}, newHookCodec())

	enc := encrypt(t, p, nil, "pw", models.SchemePBKDF2, envelope.FormatText)
	assert.Equal(t, 1, enc.Chunks)

	dec, err := decrypt(p, enc.Data, "pw")
	require.NoError(t, err)
	assert.Empty(t, dec.Data)
}

func TestPipeline_LegacyEnvelope(t *testing.T) {
	p := NewPipeline(Options{}, logger.Nop())
	legacy := "U2FsdGVkX18BAgMEBQYHCELNimTVHWDpwaoO4Br9l1zhX2caDJvK2jRhN8UCoT8F"

	dec, err := decrypt(p, []byte(legacy), "secret")
	require.NoError(t, err)
	assert.Equal(t, "hello legacy world", string(dec.Data))
	assert.True(t, dec.Legacy)
	assert.Equal(t, models.SchemeDirect, dec.Scheme)
}

// TestPipeline_ExampleScenario: 3 MiB of random bytes behind the PNG
// signature, 1 MiB chunks, concurrency 4, real PBKDF2.
func TestPipeline_ExampleScenario(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	payload := append(png, randomBytes(3<<20, 3)...)

	p := NewPipeline(Options{ChunkSize: 1 << 20, Concurrency: 4}, logger.Nop())

	enc := encrypt(t, p, payload, "correct-horse", models.SchemePBKDF2, envelope.FormatText)
	assert.Equal(t, 4, enc.Chunks)

	info, err := envelope.Inspect(string(enc.Data))
	require.NoError(t, err)
	assert.Equal(t, 4, info.Chunks)

	dec, err := decrypt(p, enc.Data, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, payload, dec.Data)

	_, err = decrypt(p, enc.Data, "wrong-password")
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

// ── failures ──────────────────────────────────────────────────────────────────

func TestPipeline_WrongPassword(t *testing.T) {
	p := newTestPipeline(Options{ChunkSize: 100}, newHookCodec())
	enc := encrypt(t, p, randomBytes(1000, 4), "right", models.SchemePBKDF2, envelope.FormatBinary)

	dec, err := decrypt(p, enc.Data, "wrong")
	assert.Nil(t, dec)
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

func TestPipeline_InvalidInput(t *testing.T) {
	p := newTestPipeline(Options{}, newHookCodec())

	_, err := p.Run(context.Background(), Request{Password: "pw"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = p.Run(context.Background(), Request{Source: source.NewMemorySource("s", []byte("x"))})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("s", []byte("x")),
		Password: "pw",
		Scheme:   models.Scheme("rot13"),
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestPipeline_SizeCeiling(t *testing.T) {
	codec := newHookCodec()
	p := newTestPipeline(Options{ChunkSize: 64, MaxSourceSize: 1000}, codec)

	_, err := p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("exact", make([]byte, 1000)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
	})
	require.NoError(t, err)

	calls := codec.calls.Load()
	_, err = p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("over", make([]byte, 1001)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
	})
	assert.ErrorIs(t, err, models.ErrSourceTooLarge)
	assert.Equal(t, calls, codec.calls.Load(), "no chunk may be dispatched")
}

func TestPipeline_DecryptCeiling(t *testing.T) {
	p := newTestPipeline(Options{ChunkSize: 64, MaxSourceSize: 10}, newHookCodec())

	_, err := decrypt(p, make([]byte, 10_000), "pw")
	assert.ErrorIs(t, err, models.ErrSourceTooLarge)
}

func TestPipeline_ChunkFailureAbortsAndClearsSink(t *testing.T) {
	codec := newHookCodec()
	boom := errors.New("boom")
	codec.hook = func(i int) error {
		if i == 2 {
			return boom
		}
		return nil
	}

	p := newTestPipeline(Options{ChunkSize: 10, Concurrency: 1}, codec)
	sink := source.NewMemorySink()

	res, err := p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("s", randomBytes(100, 5)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
		Sink:     sink,
	})
	assert.Nil(t, res)
	require.ErrorIs(t, err, boom)

	var pe *models.PipelineError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Chunk)
	assert.Empty(t, sink.Bytes(), "partial output must be cleared")
	assert.Equal(t, int64(3), codec.calls.Load(), "no chunk dispatched after the failure")
}

func TestPipeline_ChunkFailureIsLoggedWithRunID(t *testing.T) {
	codec := newHookCodec()
	codec.hook = func(i int) error {
		if i == 1 {
			return errors.New("boom")
		}
		return nil
	}

	var buf bytes.Buffer
	p := newTestPipeline(Options{ChunkSize: 10, Concurrency: 1}, codec)
	p.log = &logger.Logger{Logger: zerolog.New(&buf)}

	_, err := p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("s", randomBytes(40, 6)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
	})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"chunk failed"`)
	assert.Contains(t, out, `"chunk":1`)
	assert.Regexp(t, `"run_id":"[0-9a-f-]{36}"`, out)
}

func TestPipeline_Deadline(t *testing.T) {
	codec := newHookCodec()
	codec.hook = func(int) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	}

	p := newTestPipeline(Options{ChunkSize: 10, Concurrency: 2, Deadline: 30 * time.Millisecond}, codec)

	_, err := p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("s", make([]byte, 1000)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
	})
	assert.ErrorIs(t, err, models.ErrTimeout)
	assert.Less(t, codec.calls.Load(), int64(100))
}

func TestPipeline_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	codec := newHookCodec()
	codec.hook = func(i int) error {
		if i == 1 {
			cancel()
		}
		return nil
	}

	p := newTestPipeline(Options{ChunkSize: 10, Concurrency: 1}, codec)

	_, err := p.Run(ctx, Request{
		Source:   source.NewMemorySource("s", make([]byte, 100)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
	})
	assert.ErrorIs(t, err, models.ErrCancelled)
	assert.Equal(t, int64(2), codec.calls.Load())
}

func TestPipeline_MalformedEnvelope(t *testing.T) {
	p := newTestPipeline(Options{}, newHookCodec())

	_, err := decrypt(p, []byte("fzc1:pbkdf2:1:AQID:%%%"), "pw")
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

// dropLastChunk cuts the final chunk off an envelope of either form.
func dropLastChunk(t *testing.T, data []byte, format envelope.Format) []byte {
	t.Helper()
	if format == envelope.FormatText {
		cut := bytes.LastIndex(data, []byte(envelope.Separator))
		require.Positive(t, cut)
		return bytes.Clone(data[:cut])
	}
	_, frames, err := envelope.ScanFrames(source.NewMemorySource("env", data))
	require.NoError(t, err)
	last := frames[len(frames)-1]
	return bytes.Clone(data[:last.Offset-4])
}

// declareChunks rewrites the chunk count of an envelope header.
func declareChunks(data []byte, format envelope.Format, from, to int) []byte {
	out := bytes.Clone(data)
	if format == envelope.FormatText {
		return bytes.Replace(out, []byte(fmt.Sprintf(":%d:", from)), []byte(fmt.Sprintf(":%d:", to)), 1)
	}
	binary.BigEndian.PutUint32(out[6:10], uint32(to))
	return out
}

func TestPipeline_TruncatedEnvelope(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	payload := append(png, randomBytes(4000, 7)...)

	for _, scheme := range []models.Scheme{models.SchemeDirect, models.SchemePBKDF2, models.SchemeArgon2} {
		for _, format := range []envelope.Format{envelope.FormatText, envelope.FormatBinary} {
			t.Run(string(scheme)+"/"+format.String(), func(t *testing.T) {
				p := NewPipeline(Options{ChunkSize: 1000, Concurrency: 4}, logger.Nop())
				enc := encrypt(t, p, payload, "pw", scheme, format)
				require.Equal(t, 5, enc.Chunks)

				sink := source.NewMemorySink()
				res, err := p.Run(context.Background(), Request{
					Source:    source.NewMemorySource("envelope", dropLastChunk(t, enc.Data, format)),
					Password:  "pw",
					Direction: Decrypt,
					Sink:      sink,
				})
				require.ErrorIs(t, err, models.ErrDecryptionFailed)
				assert.Nil(t, res)
				assert.Empty(t, sink.Bytes())
			})
		}
	}
}

func TestPipeline_TruncatedEnvelopeWithRewrittenCount(t *testing.T) {
	payload := randomBytes(4000, 8)

	for _, scheme := range []models.Scheme{models.SchemePBKDF2, models.SchemeArgon2} {
		for _, format := range []envelope.Format{envelope.FormatText, envelope.FormatBinary} {
			t.Run(string(scheme)+"/"+format.String(), func(t *testing.T) {
				p := NewPipeline(Options{ChunkSize: 1000, Concurrency: 4}, logger.Nop())
				enc := encrypt(t, p, payload, "pw", scheme, format)
				require.Equal(t, 4, enc.Chunks)

				forged := declareChunks(dropLastChunk(t, enc.Data, format), format, 4, 3)
				_, err := decrypt(p, forged, "pw")
				require.ErrorIs(t, err, models.ErrDecryptionFailed)

				var pe *models.PipelineError
				require.ErrorAs(t, err, &pe)
				assert.GreaterOrEqual(t, pe.Chunk, 0, "the forged count fails chunk authentication")
			})
		}
	}
}

// ── sinks ─────────────────────────────────────────────────────────────────────

func TestPipeline_WritesToSink(t *testing.T) {
	p := newTestPipeline(Options{ChunkSize: 100}, newHookCodec())
	sink := source.NewMemorySink()

	res, err := p.Run(context.Background(), Request{
		Source:   source.NewMemorySource("s", randomBytes(250, 6)),
		Password: "pw",
		Scheme:   models.SchemePBKDF2,
		Format:   envelope.FormatBinary,
		Sink:     sink,
	})
	require.NoError(t, err)
	assert.Nil(t, res.Data)
	assert.Equal(t, int64(len(sink.Bytes())), res.OutputBytes)
	assert.True(t, bytes.HasPrefix(sink.Bytes(), envelope.Magic))
	assert.NotEmpty(t, res.RunID)
}
