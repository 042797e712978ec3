package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_WritesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.Info().Str("path", ".env").Msg("loaded .env file")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "loaded .env file")
	assert.Contains(t, out, "path=")
}

func TestFromCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	ctx := logger.WithContext(context.Background())

	FromCtx(ctx).Warn().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	setLevel(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	setLevel(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
