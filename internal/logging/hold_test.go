package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldWriter_PassThroughHoldRelease(t *testing.T) {
	var out bytes.Buffer
	h := NewHoldWriter(&out)

	_, err := h.Write([]byte("before\n"))
	require.NoError(t, err)
	assert.Equal(t, "before\n", out.String())

	h.Hold()
	logger := NewLogger(h, Config{Level: "debug", Format: FormatJSON})
	logger.Info().Msg("fetch cycle started")
	assert.Equal(t, "before\n", out.String(), "held output must not reach the terminal")

	require.NoError(t, h.Release())
	assert.Contains(t, out.String(), "fetch cycle started")

	_, err = h.Write([]byte("after\n"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "after\n"))
}

func TestHoldWriter_DropsBeyondLimit(t *testing.T) {
	var out bytes.Buffer
	h := NewHoldWriter(&out)
	h.Hold()

	chunk := bytes.Repeat([]byte("x"), maxHeldBytes)
	n, err := h.Write(chunk)
	require.NoError(t, err)
	assert.Equal(t, len(chunk), n)

	n, err = h.Write([]byte("overflow"))
	require.NoError(t, err)
	assert.Equal(t, len("overflow"), n)

	require.NoError(t, h.Release())
	assert.Equal(t, maxHeldBytes+len("... 8 bytes of log output dropped\n"), out.Len())
	assert.NotContains(t, out.String(), "overflow")
}

func TestNewLoggerWithPath_StderrIsHoldable(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputStderr})
	assert.NotNil(t, result.Stderr)

	file := NewLoggerWithPath(Config{Output: OutputFile, File: t.TempDir() + "/pokecatch.log"})
	t.Cleanup(func() { _ = file.Close() })
	assert.True(t, file.UsingFile)
	assert.Nil(t, file.Stderr)
}

func TestStderrHoldContext(t *testing.T) {
	assert.Nil(t, StderrHoldFromContext(context.Background()))

	h := NewHoldWriter(&bytes.Buffer{})
	ctx := ContextWithStderrHold(context.Background(), h)
	assert.Same(t, h, StderrHoldFromContext(ctx))
}
