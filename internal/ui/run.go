// Package ui shows a terminal progress view while a single download runs.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/progress"
)

// Job performs the download. It reports progress through rep and prints
// user-facing messages to out, which are shown above the progress view.
type Job func(ctx context.Context, rep progress.Reporter, out io.Writer) bool

// Run shows the progress view until job returns or the user quits, and
// reports whether the job succeeded.
func Run(ctx context.Context, title string, job Job) (bool, error) {
	c, cancel := context.WithCancel(ctx)
	defer cancel()

	prog := tea.NewProgram(newModel(title, cancel), tea.WithContext(c))
	go func() {
		var ok bool
		defer func() {
			if r := recover(); r != nil {
				prog.Send(doneMsg{Err: fmt.Errorf("panic: %v", r)})
				return
			}
			prog.Send(doneMsg{OK: ok})
		}()
		ok = job(c, teaReporter{p: prog}, printer{p: prog})
	}()

	final, err := prog.Run()
	if err != nil && err != tea.ErrProgramKilled {
		return false, err
	}
	fm, isModel := final.(Model)
	if !isModel || !fm.done {
		return false, nil
	}
	return fm.ok, fm.err
}

type teaReporter struct {
	p *tea.Program
}

func (r teaReporter) Update(u progress.Update) { r.p.Send(updateMsg{U: u}) }
func (r teaReporter) Log(l progress.Log)       { r.p.Send(logMsg{L: l}) }
func (r teaReporter) Result(progress.Result)   {}

// printer forwards written lines to the program so they appear above the view.
type printer struct {
	p *tea.Program
}

func (w printer) Write(b []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		w.p.Println(line)
	}
	return len(b), nil
}
