// Package gui is the desktop front end: a small fyne form that loads the
// available qualities for a URL and downloads the chosen one.
package gui

import (
	"context"
	"errors"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"ytpick/internal/app"
	"ytpick/internal/progress"
	"ytpick/internal/quality"
)

// ErrUnavailable is returned by Run when no desktop session can be opened.
var ErrUnavailable = errors.New("GUI not available")

// Config holds what the window needs from the command line.
type Config struct {
	Service *app.Service
	URL     string // pre-filled into the URL field
	OutDir  string // initial output folder, shown as an absolute path
	Logger  hclog.Logger
	Ctx     context.Context
}

// hasDisplay reports whether a window can be opened. X11 and Wayland systems
// need DISPLAY or WAYLAND_DISPLAY; other platforms always have a desktop.
func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

func displayAvailable() bool {
	return hasDisplay(runtime.GOOS, os.Getenv)
}

// qualityLabels returns the select options for the given heights.
func qualityLabels(heights []int) []string {
	choices := quality.Choices(heights)
	labels := make([]string, len(choices))
	for i, q := range choices {
		labels[i] = q.Label()
	}
	return labels
}

// barState is what a progress event does to the bar and status label.
type barState struct {
	Value    float64 // 0..1
	SetValue bool
	Status   string
}

func stateFor(u progress.Update) barState {
	switch u.Status {
	case progress.StatusDownloading:
		v := 0.0
		if u.Percent > 0 {
			v = u.Percent / 100
		}
		return barState{Value: v, SetValue: true, Status: u.Message}
	case progress.StatusFinished:
		return barState{Value: 1, SetValue: true, Status: "Download completed."}
	case progress.StatusError:
		return barState{Status: "Download error."}
	}
	return barState{Status: u.Message}
}

func finalStatus(ok bool) string {
	if ok {
		return "Download finished."
	}
	return "Download failed."
}
