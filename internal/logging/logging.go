// Package logging configures the structured logger cmd/sysml2 uses for
// operation tracing and hands to internal/validate (as
// validate.Options.Logger) for per-pass tracing. It never carries diagnostic
// findings; those go through internal/diag so stdout stays exactly what
// the CLI contract promises.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logger at Warn level for verbosity 0, Debug for 1, and
// Trace for 2 or higher (the repeatable -v/--verbose flag's count),
// writing to out with a text formatter. Trace is what carries
// internal/validate's per-pass entry/exit tracing; Debug alone never
// reaches it. Timestamps are disabled when out is a terminal and
// enabled otherwise, so redirected/piped logs stay greppable by time
// while interactive runs stay terse.
func New(verbosity int, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level := logrus.WarnLevel
	switch {
	case verbosity >= 2:
		level = logrus.TraceLevel
	case verbosity == 1:
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	isTTY := false
	if f, ok := out.(*os.File); ok {
		if fi, err := f.Stat(); err == nil {
			isTTY = fi.Mode()&os.ModeCharDevice != 0
		}
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: isTTY,
		FullTimestamp:    !isTTY,
	})

	return log
}
