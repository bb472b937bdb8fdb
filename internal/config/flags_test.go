package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_AllFlags verifies that every flag lands in its field.
func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-scheme", "direct",
		"-chunk-size", "100KB",
		"-concurrency", "4",
		"-max-size", "5MB",
		"-deadline", "10s",
		"-cache-capacity", "3",
		"-raw-ttl", "1m",
		"-d", "test.db",
		"-export-dir", "/exports",
		"-media-dir", "/media",
		"-temp-dir", "/tmp/crypter",
		"-janitor-interval", "20s",
		"-log-level", "warn",
		"-config", "/etc/crypter.json",
		"photo.jpg",
	}

	cfg, rest, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "direct", cfg.Crypto.Scheme)
	assert.Equal(t, ByteSize(100_000), cfg.Crypto.ChunkSize)
	assert.Equal(t, 4, cfg.Crypto.Concurrency)
	assert.Equal(t, ByteSize(5_000_000), cfg.Crypto.MaxSourceSize)
	assert.Equal(t, 10*time.Second, cfg.Crypto.Deadline)
	assert.Equal(t, 3, cfg.Cache.Capacity)
	assert.Equal(t, time.Minute, cfg.Cache.RawTTL)
	assert.Equal(t, "test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/exports", cfg.Storage.Files.ExportDir)
	assert.Equal(t, "/media", cfg.Storage.Files.MediaDir)
	assert.Equal(t, "/tmp/crypter", cfg.Storage.Files.TempDir)
	assert.Equal(t, 20*time.Second, cfg.Workers.JanitorInterval)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/etc/crypter.json", cfg.JSONFilePath)
	assert.Equal(t, []string{"photo.jpg"}, rest)
}

// TestParseFlags_NoFlags verifies that an empty arg list yields a zero config.
func TestParseFlags_NoFlags(t *testing.T) {
	cfg, rest, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Empty(t, rest)
}

// TestParseFlags_ShortConfigAlias verifies that -c sets the JSON path.
func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, _, err := ParseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

// TestParseFlags_Errors verifies that malformed values are rejected.
func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown"}},
		{name: "bad byte size", args: []string{"-chunk-size", "big"}},
		{name: "bad duration", args: []string{"-deadline", "later"}},
		{name: "bad int", args: []string{"-concurrency", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, rest, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Nil(t, rest)
		})
	}
}

// TestByteSize tests parsing and rendering of human-readable sizes.
func TestByteSize(t *testing.T) {
	tests := []struct {
		input    string
		expected ByteSize
	}{
		{input: "1MiB", expected: 1 << 20},
		{input: "1.5MB", expected: 1_500_000},
		{input: "100 KB", expected: 100_000},
		{input: "42", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var s ByteSize
			require.NoError(t, s.Set(tt.input))
			assert.Equal(t, tt.expected, s)
		})
	}

	assert.Equal(t, "1.0 MiB", ByteSize(1<<20).String())
	assert.Equal(t, int64(2048), ByteSize(2048).Int64())
}
