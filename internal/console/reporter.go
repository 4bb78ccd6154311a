package console

import (
	"fmt"
	"io"
	"sync"

	"ytpick/internal/progress"
)

// LineReporter prints progress as plain lines, for output that is not a
// terminal. Downloading updates are printed at most once per 10%.
type LineReporter struct {
	mu       sync.Mutex
	w        io.Writer
	lastStep int
	lastFile string
}

// NewLineReporter returns a reporter writing to w.
func NewLineReporter(w io.Writer) *LineReporter {
	return &LineReporter{w: w, lastStep: -1}
}

func (r *LineReporter) Update(u progress.Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch u.Status {
	case progress.StatusDownloading:
		if u.Filename != r.lastFile {
			r.lastFile = u.Filename
			r.lastStep = -1
		}
		step := int(u.Percent) / 10
		if u.Percent < 0 || step == r.lastStep {
			return
		}
		r.lastStep = step
	case progress.StatusFinished, progress.StatusError:
		r.lastStep = -1
	}
	if u.Message != "" {
		fmt.Fprintln(r.w, u.Message)
	}
}

func (r *LineReporter) Log(progress.Log) {}

func (r *LineReporter) Result(progress.Result) {}
