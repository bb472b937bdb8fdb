package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Empty(t, b.rest)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config with no
// sources at all is rejected.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// TestBuild_DefaultsOnly verifies that the defaults layer alone is valid.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero field wins
// and zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Crypto: Crypto{Concurrency: 8}},
		&StructuredConfig{Crypto: Crypto{Scheme: "argon2id"}, Cache: Cache{Capacity: 10}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Crypto.Concurrency)
	assert.Equal(t, "argon2id", cfg.Crypto.Scheme)
	assert.Equal(t, 10, cfg.Cache.Capacity)
	assert.Equal(t, DefaultChunkSize, cfg.Crypto.ChunkSize)
	assert.Equal(t, DefaultRawTTL, cfg.Cache.RawTTL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_KeepsPositionalArgs verifies that arguments left after flag
// parsing are kept on the builder.
func TestWithFlags_KeepsPositionalArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-concurrency", "2", "in.png", "out.fzc"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 2, b.configs[0].Crypto.Concurrency)
	assert.Equal(t, []string{"in.png", "out.fzc"}, b.rest)
}

// TestWithFlags_InvalidFlagAccumulatesError verifies that an unknown flag
// surfaces from build.
func TestWithFlags_InvalidFlagAccumulatesError(t *testing.T) {
	b := newConfigBuilder().withDefaults().withFlags([]string{"-no-such-flag"})
	require.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkips verifies that no JSON layer is added when no
// source names a file.
func TestWithJSON_NoPathSkips(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileAccumulatesError verifies that an unreadable JSON
// path is reported.
func TestWithJSON_MissingFileAccumulatesError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithJSON_OverridesFlags verifies that the JSON file is the last layer.
func TestWithJSON_OverridesFlags(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"crypto": map[string]any{"concurrency": 6, "chunk_size": "512KiB"},
		"cache":  map[string]any{"raw_ttl": "2m"},
	})

	b := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-concurrency", "2", "-c", path}).
		withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Crypto.Concurrency)
	assert.Equal(t, ByteSize(512*1024), cfg.Crypto.ChunkSize)
	assert.Equal(t, 2*time.Minute, cfg.Cache.RawTTL)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvThenFlags verifies the env and flag layers and
// the returned positional arguments.
func TestGetStructuredConfig_EnvThenFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CRYPTO_SCHEME":      "direct",
		"CRYPTO_CONCURRENCY": "3",
		"STORAGE_DB_DSN":     "env.db",
	})

	cfg, rest, err := GetStructuredConfig([]string{"-d", "flag.db", "payload.txt"})
	require.NoError(t, err)
	assert.Equal(t, "direct", cfg.Crypto.Scheme)
	assert.Equal(t, 3, cfg.Crypto.Concurrency)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"payload.txt"}, rest)
}

// TestGetStructuredConfig_InvalidScheme verifies that validation runs on the
// merged result.
func TestGetStructuredConfig_InvalidScheme(t *testing.T) {
	clearEnvVars(t)

	cfg, _, err := GetStructuredConfig([]string{"-scheme", "rot13"})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}
