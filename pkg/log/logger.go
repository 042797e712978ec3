package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

const (
	// ring buffer between callers and stderr
	bufferSize   = 1000
	pollInterval = 5 * time.Millisecond
)

// NewContextWithLogger installs the process logger and returns a context carrying it.
// Output goes to stderr so command output on stdout stays machine readable.
// The returned func flushes pending messages and must run before exit.
func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	setLevel(debug)

	wr := diode.NewWriter(os.Stderr, bufferSize, pollInterval, func(missed int) {
		fmt.Fprintf(os.Stderr, "logger dropped %d messages\n", missed)
	})

	log.Logger = NewLogger(wr)
	return log.Logger.WithContext(ctx), func() { _ = wr.Close() }
}

func setLevel(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// NewLogger builds the console logger used by the CLI on top of w.
// Caller info is dropped; commands are short and the message names the step.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}).With().Timestamp().Logger()
}

func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
