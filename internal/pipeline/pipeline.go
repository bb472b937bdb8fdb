// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline splits a payload into ordered chunks, seals or opens them
// concurrently under one derived key and reassembles the output in strict
// offset order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-crypter/internal/config"
	"github.com/MKhiriev/go-crypter/internal/crypto"
	"github.com/MKhiriev/go-crypter/internal/envelope"
	"github.com/MKhiriev/go-crypter/internal/logger"
	"github.com/MKhiriev/go-crypter/internal/source"
	"github.com/MKhiriev/go-crypter/internal/utils"
	"github.com/MKhiriev/go-crypter/models"
	"github.com/dustin/go-humanize"
)

// Direction selects what a run does with its source.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Request describes one run.
type Request struct {
	// Source is the plaintext (encrypt) or the envelope (decrypt).
	Source source.ByteSource
	// Password is the user secret. It is never logged or retained.
	Password string
	Direction Direction
	// Scheme is the key-derivation scheme of a new envelope. Empty means
	// Options.DefaultScheme. Ignored on decrypt, where the envelope header
	// decides.
	Scheme models.Scheme
	// Format is the envelope form written on encrypt. Decrypt detects the
	// form from the envelope itself.
	Format envelope.Format
	// Sink receives the output. When nil the output is collected in memory
	// and returned as Result.Data.
	Sink source.ByteSink
}

// Result describes a successful run.
type Result struct {
	RunID string
	// Data is the output when Request.Sink was nil.
	Data        []byte
	Chunks      int
	Scheme      models.Scheme
	Legacy      bool
	InputBytes  int64
	OutputBytes int64
	Elapsed     time.Duration
}

// Options tune every run of a Pipeline.
type Options struct {
	ChunkSize     int
	Concurrency   int
	MaxSourceSize int64
	// Deadline bounds a whole run. Zero disables it.
	Deadline      time.Duration
	DefaultScheme models.Scheme
	// Suites resolves the deriver and codec of a scheme. Nil means
	// crypto.NewSuite.
	Suites func(models.Scheme) (crypto.Suite, error)
	// Executor overrides the executor picked by NewExecutor.
	Executor Executor
}

// OptionsFromConfig maps the crypto section of the application config. The
// scheme must already be validated.
func OptionsFromConfig(cfg config.Crypto) Options {
	return Options{
		ChunkSize:     int(cfg.ChunkSize.Int64()),
		Concurrency:   cfg.Concurrency,
		MaxSourceSize: cfg.MaxSourceSize.Int64(),
		Deadline:      cfg.Deadline,
		DefaultScheme: models.Scheme(cfg.Scheme),
	}
}

// minChunkForCeiling is the smallest chunk size assumed when bounding the
// size of an envelope to decrypt, so envelopes written with smaller chunks
// than the current setting still pass.
const minChunkForCeiling = 64 << 10

// Pipeline is the default [Runner].
type Pipeline struct {
	opts     Options
	executor Executor
	ids      *utils.UUIDGenerator
	log      *logger.Logger
}

// NewPipeline returns a Pipeline with opts. Non-positive sizes fall back to
// 1 MiB chunks, concurrency 4 and a 50 MiB ceiling.
func NewPipeline(opts Options, log *logger.Logger) *Pipeline {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1 << 20
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.MaxSourceSize <= 0 {
		opts.MaxSourceSize = 50 << 20
	}
	if opts.DefaultScheme == "" {
		opts.DefaultScheme = models.SchemePBKDF2
	}
	if opts.Suites == nil {
		opts.Suites = crypto.NewSuite
	}

	executor := opts.Executor
	if executor == nil {
		executor = NewExecutor(opts.Concurrency)
	}

	return &Pipeline{
		opts:     opts,
		executor: executor,
		ids:      utils.NewUUIDGenerator(),
		log:      log,
	}
}

// plan is the direction- and format-specific part of a run.
type plan struct {
	chunks  int
	scheme  models.Scheme
	legacy  bool
	key     *crypto.DerivedKey
	prefix  []byte
	process func(i int) ([]byte, error)
}

func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()
	op := req.Direction.String()

	if req.Source == nil {
		return nil, models.NewPipelineError(op, -1, fmt.Errorf("%w: no source", models.ErrInvalidInput))
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, models.NewPipelineError(op, -1, fmt.Errorf("%w: empty password", models.ErrInvalidInput))
	}
	if err := p.checkCeiling(req); err != nil {
		return nil, models.NewPipelineError(op, -1, err)
	}

	runID := p.ids.Generate()
	log := p.log.WithRunID(runID)
	ctx = utils.WithRunID(p.log.WithContext(ctx), runID)

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if p.opts.Deadline > 0 {
		runCtx, cancel = context.WithTimeout(ctx, p.opts.Deadline)
	}
	defer cancel()

	var pl *plan
	var err error
	if req.Direction == Decrypt {
		pl, err = p.planDecrypt(req)
	} else {
		pl, err = p.planEncrypt(req)
	}
	if err != nil {
		return nil, models.NewPipelineError(op, -1, err)
	}
	defer pl.key.Destroy()

	log.Debug().
		Str("direction", op).
		Str("scheme", string(pl.scheme)).
		Int("chunks", pl.chunks).
		Str("size", humanize.IBytes(uint64(req.Source.Length()))).
		Msg("pipeline run started")

	sink := req.Sink
	var memSink *source.MemorySink
	if sink == nil {
		memSink = source.NewMemorySink()
		sink = memSink
	}

	var written int64
	if len(pl.prefix) > 0 {
		if err := sink.Append(pl.prefix); err != nil {
			return nil, p.fail(log, sink, models.NewPipelineError(op, -1, err))
		}
		written += int64(len(pl.prefix))
	}

	re := newReassembler(2*p.executor.Concurrency(), func(_ int, out []byte) error {
		if err := sink.Append(out); err != nil {
			return err
		}
		written += int64(len(out))
		return nil
	})

	execErr := p.executor.Execute(runCtx, pl.chunks, func(ctx context.Context, i int) error {
		if err := re.admit(ctx, i); err != nil {
			return err
		}
		out, err := pl.process(i)
		if err != nil {
			logChunkFailure(ctx, op, i, err)
			return models.NewPipelineError(op, i, err)
		}
		if err := re.complete(i, out); err != nil {
			return models.NewPipelineError(op, i, err)
		}
		return nil
	})

	if execErr == nil && re.emitted() != pl.chunks {
		execErr = runCtx.Err()
		if execErr == nil {
			execErr = fmt.Errorf("%w: %d of %d chunks emitted", models.ErrIO, re.emitted(), pl.chunks)
		}
	}
	if execErr != nil {
		return nil, p.fail(log, sink, contextFailure(op, execErr))
	}

	res := &Result{
		RunID:       runID,
		Chunks:      pl.chunks,
		Scheme:      pl.scheme,
		Legacy:      pl.legacy,
		InputBytes:  req.Source.Length(),
		OutputBytes: written,
		Elapsed:     time.Since(started),
	}
	if memSink != nil {
		res.Data = memSink.Bytes()
	}

	log.Debug().
		Str("direction", op).
		Int("chunks", res.Chunks).
		Str("output", humanize.IBytes(uint64(res.OutputBytes))).
		Dur("elapsed", res.Elapsed).
		Msg("pipeline run finished")

	return res, nil
}

func logChunkFailure(ctx context.Context, op string, i int, err error) {
	ev := logger.FromContext(ctx).Debug().Err(err).Str("direction", op).Int("chunk", i)
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		ev = ev.Str("run_id", runID)
	}
	ev.Msg("chunk failed")
}

func (p *Pipeline) checkCeiling(req Request) error {
	limit := p.opts.MaxSourceSize
	if req.Direction == Decrypt {
		limit = envelope.MaxEnvelopeSize(p.opts.MaxSourceSize, int64(min(p.opts.ChunkSize, minChunkForCeiling)))
	}
	if n := req.Source.Length(); n > limit {
		return fmt.Errorf("%w: %s exceeds %s", models.ErrSourceTooLarge,
			humanize.IBytes(uint64(n)), humanize.IBytes(uint64(limit)))
	}
	return nil
}

func (p *Pipeline) planEncrypt(req Request) (*plan, error) {
	scheme := req.Scheme
	if scheme == "" {
		scheme = p.opts.DefaultScheme
	}
	suite, err := p.opts.Suites(scheme)
	if err != nil {
		return nil, err
	}

	key, err := suite.Deriver.DeriveKey(req.Password, nil)
	if err != nil {
		return nil, err
	}

	src := req.Source
	chunkSize := p.opts.ChunkSize
	chunks := int(max(1, (src.Length()+int64(chunkSize)-1)/int64(chunkSize)))
	header := envelope.Header{Scheme: scheme, Salt: key.Salt, Chunks: chunks}

	pl := &plan{chunks: chunks, scheme: scheme, key: key}
	binary := req.Format == envelope.FormatBinary
	if binary {
		pl.prefix = envelope.BinaryHeader(header)
	} else {
		pl.prefix = []byte(envelope.TextPrefix(header))
	}

	pl.process = func(i int) ([]byte, error) {
		plain, err := src.ReadRange(int64(i)*int64(chunkSize), chunkSize)
		if err != nil {
			return nil, err
		}
		sealed, err := suite.Codec.EncryptChunk(i, chunks, plain, key)
		if err != nil {
			return nil, err
		}
		if binary {
			return envelope.Frame(sealed), nil
		}
		return []byte(envelope.TextChunk(i, sealed)), nil
	}

	return pl, nil
}

func (p *Pipeline) planDecrypt(req Request) (*plan, error) {
	src := req.Source

	var header envelope.Header
	var load func(i int) ([]byte, error)
	var chunks int

	if envelope.IsBinary(src) {
		h, frames, err := envelope.ScanFrames(src)
		if err != nil {
			return nil, err
		}
		header, chunks = h, h.Chunks
		load = func(i int) ([]byte, error) {
			return src.ReadRange(frames[i].Offset, frames[i].Length)
		}
	} else {
		raw, err := src.ReadRange(0, int(src.Length()))
		if err != nil {
			return nil, err
		}
		h, sealed, err := envelope.DecodeText(string(raw))
		if err != nil {
			return nil, err
		}
		header, chunks = h, h.Chunks
		load = func(i int) ([]byte, error) {
			return sealed[i], nil
		}
	}

	suite, err := p.opts.Suites(header.Scheme)
	if err != nil {
		return nil, err
	}
	key, err := suite.Deriver.DeriveKey(req.Password, header.Salt)
	if err != nil {
		return nil, err
	}

	return &plan{
		chunks: chunks,
		scheme: header.Scheme,
		legacy: header.Legacy,
		key:    key,
		process: func(i int) ([]byte, error) {
			sealed, err := load(i)
			if err != nil {
				return nil, err
			}
			return suite.Codec.DecryptChunk(i, chunks, sealed, key)
		},
	}, nil
}

// fail clears partial output and logs the failure once.
func (p *Pipeline) fail(log *logger.Logger, sink source.ByteSink, err error) error {
	if clearErr := sink.Clear(); clearErr != nil {
		log.Warn().Err(clearErr).Msg("failed to clear sink after pipeline failure")
	}
	log.Error().Err(err).Msg("pipeline run failed")
	return err
}

// contextFailure maps context errors to the taxonomy and keeps every other
// error as is.
func contextFailure(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewPipelineError(op, chunkOf(err), models.ErrTimeout)
	case errors.Is(err, context.Canceled):
		return models.NewPipelineError(op, chunkOf(err), models.ErrCancelled)
	}
	return err
}

func chunkOf(err error) int {
	var pe *models.PipelineError
	if errors.As(err, &pe) {
		return pe.Chunk
	}
	return -1
}
