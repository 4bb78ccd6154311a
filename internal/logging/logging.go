// Package logging builds the process-wide hclog logger.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the logger name printed on every line.
const Name = "ytpick"

// New returns a logger writing to w (stderr when nil). Verbose enables
// debug output, otherwise only warnings and errors are shown.
func New(verbose bool, w io.Writer) hclog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: w,
		Level:  level,
	})
}
