package ui

import (
	"context"
	"strings"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ytpick/internal/progress"
)

const maxLogLines = 3

// Model renders one download: spinner until the first progress event, then a
// bar with the status line yt-dlp reported.
type Model struct {
	cancel context.CancelFunc

	title    string
	status   progress.Status
	message  string
	percent  float64 // -1 means unknown
	filename string
	logs     []string

	done bool
	ok   bool
	err  error

	spinner spinner.Model
	bar     bubblesprogress.Model
	styles  Styles
	width   int
}

func newModel(title string, cancel context.CancelFunc) Model {
	sty := defaultStyles()
	sp := spinner.New()
	sp.Style = sty.Spinner
	return Model{
		cancel:  cancel,
		title:   title,
		status:  progress.StatusProbing,
		message: "Starting download...",
		percent: -1,
		spinner: sp,
		bar: bubblesprogress.New(
			bubblesprogress.WithDefaultGradient(),
			bubblesprogress.WithWidth(40),
		),
		styles: sty,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case updateMsg:
		u := msg.U
		m.status = u.Status
		if u.Message != "" {
			m.message = u.Message
		}
		if u.Filename != "" {
			m.filename = u.Filename
		}
		if u.Status == progress.StatusError {
			m.percent = -1
		} else if u.Percent >= 0 {
			m.percent = u.Percent
		}
	case logMsg:
		line := strings.TrimRight(msg.L.Line, "\r\n")
		if line != "" {
			m.logs = append(m.logs, line)
			if len(m.logs) > maxLogLines {
				m.logs = m.logs[len(m.logs)-maxLogLines:]
			}
		}
	case doneMsg:
		m.done = true
		m.ok = msg.OK
		m.err = msg.Err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewHeader() + "\n\n" + m.viewJob() + "\n"
}
