// Package logging provides the process-wide structured logger used by the
// bus, cpu and machine packages for diagnostic and fault output.
//
// zerolog is not part of the teacher's own stack (hejops-gone has no
// ambient logger; its debugger writes straight to a bubbletea view), but
// is the idiomatic choice for a Go emulation core's leveled logging; see
// DESIGN.md.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Logger returns the shared logger, initializing it on first use with a
// console writer at info level.
func Logger() *zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger()
	})
	return &log
}

// SetLevel adjusts the minimum logged level, e.g. zerolog.DebugLevel when
// a caller wants bus/decode trace output.
func SetLevel(level zerolog.Level) {
	Logger()
	log = log.Level(level)
}
