package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"ytpick/internal/progress"
)

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("ytpick: " + truncate(m.title, 60))
	sub := m.styles.Subtitle.Render("q: cancel")
	return title + "\n" + sub
}

func (m Model) viewJob() string {
	stageStyle := m.styles.Info
	switch m.status {
	case progress.StatusDownloading:
		stageStyle = m.styles.StageDL
	case progress.StatusFinished:
		stageStyle = m.styles.Success
	case progress.StatusError:
		stageStyle = m.styles.Error
	}

	var top string
	switch {
	case m.done && m.ok:
		top = m.styles.Success.Render("✓ Download finished.")
	case m.done:
		top = m.styles.Error.Render("✗ Download failed.")
	case m.percent >= 0 && m.percent <= 100:
		top = fmt.Sprintf("%s %5.1f%%", m.bar.ViewAs(m.percent/100.0), m.percent)
	default:
		top = m.styles.Spinner.Render(m.spinner.View()) + " " + m.styles.Faint.Render("waiting")
	}

	lines := []string{top, stageStyle.Render(m.message)}
	if m.filename != "" {
		lines = append(lines, m.styles.Faint.Render(filepath.Base(m.filename)))
	}
	for _, l := range m.logs {
		lines = append(lines, m.styles.Faint.Render(truncate(l, 80)))
	}
	return m.styles.Box.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 0 || len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
