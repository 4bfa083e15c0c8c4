// Package logging builds the zerolog loggers used by the client and the
// headless runner.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var out io.Writer = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// New returns a console logger tagged with component.
func New(component string) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Str("component", component).Logger()
}

// SetOutput redirects every logger created afterwards.
func SetOutput(w io.Writer) {
	out = w
}

// SetLevel sets the global level from a name such as "debug" or "warn".
// Unknown names fall back to info.
func SetLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return lvl
}

// Sampled thins out a high-rate logger: a burst of entries per period,
// then one in n.
func Sampled(l zerolog.Logger, burst uint32, period time.Duration, n uint32) zerolog.Logger {
	return l.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       burst,
		Period:      period,
		NextSampler: &zerolog.BasicSampler{N: n},
	})
}
