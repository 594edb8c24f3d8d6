package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{Level: "warn", Format: FormatJSON})

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{Level: "chatty"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pokecatch.log")
	result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("written")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	// A regular file where a directory is expected makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "a.log")})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(NewLogger(&buf, Config{}), "catalog")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"catalog"`)
}

func TestTraceIDs(t *testing.T) {
	id := NewID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx := ContextWithTraceID(context.Background(), id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
	assert.NotEmpty(t, GetOrGenerateTraceID(context.Background()))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{})
	ctx := logger.WithContext(ContextWithTraceID(context.Background(), "trace-1"))

	FromContext(ctx).Info().Msg("ctx")
	assert.True(t, strings.Contains(buf.String(), `"trace_id":"trace-1"`))

	// No logger attached: must not panic.
	FromContext(context.Background()).Info().Msg("dropped")
}
