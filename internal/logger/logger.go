// Package logger provides the charmbracelet/log-based constructors shared
// by the symspellctl and symspellsrv commands; the internal packages do not
// log. The core
// pkg/symspell package stays silent by design — logging is an ambient,
// non-core concern per spec.md §1.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a logger prefixed for a given component, respecting the
// process-wide log level set via SetLevel.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetLevel parses a level name (debug, info, warn, error) and sets it as
// the global charmbracelet/log level; unrecognized names fall back to
// info.
func SetLevel(name string) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
