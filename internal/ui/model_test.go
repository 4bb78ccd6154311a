package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/progress"
)

func TestModelTracksProgress(t *testing.T) {
	var m tea.Model = newModel("Clip", nil)

	m, _ = m.Update(updateMsg{U: progress.Update{
		Status:   progress.StatusDownloading,
		Percent:  42,
		Filename: "/out/Clip.f137.mp4",
		Message:  "Downloading: 42.0% at 1.0 MB/s ETA 3s",
	}})
	got := m.(Model)
	if got.percent != 42 || got.status != progress.StatusDownloading {
		t.Errorf("model = %+v", got)
	}
	view := got.View()
	if !strings.Contains(view, "Downloading: 42.0%") || !strings.Contains(view, "Clip.f137.mp4") {
		t.Errorf("view missing status:\n%s", view)
	}

	m, _ = m.Update(updateMsg{U: progress.Update{Status: progress.StatusError, Percent: -1, Message: "Download error."}})
	if got := m.(Model); got.percent != -1 || got.message != "Download error." {
		t.Errorf("error update not applied: %+v", got)
	}
}

func TestModelKeepsRecentLogs(t *testing.T) {
	var m tea.Model = newModel("Clip", nil)
	for _, l := range []string{"a", "b", "c", "d", ""} {
		m, _ = m.Update(logMsg{L: progress.Log{Line: l}})
	}
	logs := m.(Model).logs
	if len(logs) != maxLogLines || logs[0] != "b" || logs[2] != "d" {
		t.Errorf("logs = %q", logs)
	}
}

func TestModelQuitsWhenDone(t *testing.T) {
	var m tea.Model = newModel("Clip", nil)
	m, cmd := m.Update(doneMsg{OK: true})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("done should quit the program")
	}
	if got := m.(Model); !got.done || !got.ok {
		t.Errorf("model = %+v", got)
	}
	if !strings.Contains(m.View(), "Download finished.") {
		t.Errorf("view = %s", m.View())
	}
}

func TestQuitKeyCancels(t *testing.T) {
	cancelled := false
	var m tea.Model = newModel("Clip", func() { cancelled = true })
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !cancelled || cmd == nil {
		t.Error("q should cancel the download and quit")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate = %q", got)
	}
}
