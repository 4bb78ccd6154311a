//go:build !nogui

package gui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/hashicorp/go-hclog"

	"ytpick/internal/app"
	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/quality"
	"ytpick/internal/util"
)

// AppID identifies the application to fyne's preferences store.
const AppID = "io.github.ytpick"

// Available reports whether a desktop window can be opened.
func Available() bool { return displayAvailable() }

type window struct {
	cfg    Config
	ctx    context.Context
	logger hclog.Logger
	win    fyne.Window

	urlEntry  *widget.Entry
	outEntry  *widget.Entry
	qualities *widget.Select
	bar       *widget.ProgressBar
	status    *widget.Label
	loadBtn   *widget.Button
	dlBtn     *widget.Button
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) error {
	if !Available() {
		return ErrUnavailable
	}
	if cfg.Service == nil {
		cfg.Service = app.NewService()
	}
	w := &window{cfg: cfg, ctx: cfg.Ctx, logger: cfg.Logger}
	if w.ctx == nil {
		w.ctx = context.Background()
	}
	if w.logger == nil {
		w.logger = hclog.NewNullLogger()
	}

	a := fyneapp.NewWithID(AppID)
	w.win = a.NewWindow("ytpick")
	w.win.SetContent(w.build())
	w.win.Resize(fyne.NewSize(560, 320))
	w.win.ShowAndRun()
	return nil
}

func (w *window) build() fyne.CanvasObject {
	w.urlEntry = widget.NewEntry()
	w.urlEntry.SetPlaceHolder("https://www.youtube.com/watch?v=...")
	w.urlEntry.SetText(w.cfg.URL)

	w.outEntry = widget.NewEntry()
	w.outEntry.SetText(util.AbsDir(w.cfg.OutDir))
	browse := widget.NewButton("Browse", w.onBrowse)

	w.qualities = widget.NewSelect(nil, nil)
	w.qualities.PlaceHolder = "Enter URL and click 'Load Qualities'"

	w.bar = widget.NewProgressBar()
	w.status = widget.NewLabel("")
	w.loadBtn = widget.NewButton("Load Qualities", w.onLoad)
	w.dlBtn = widget.NewButton("Download", w.onDownload)

	return container.NewVBox(
		widget.NewLabel("Video URL"),
		w.urlEntry,
		widget.NewLabel("Output folder"),
		container.NewBorder(nil, nil, nil, browse, w.outEntry),
		widget.NewLabel("Quality"),
		w.qualities,
		container.NewHBox(w.loadBtn, w.dlBtn),
		w.bar,
		w.status,
	)
}

func (w *window) onBrowse() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		w.outEntry.SetText(uri.Path())
	}, w.win)
}

func (w *window) onLoad() {
	url := strings.TrimSpace(w.urlEntry.Text)
	if url == "" {
		dialog.ShowInformation("Missing URL", "Please enter a video URL.", w.win)
		return
	}
	w.loadBtn.Disable()
	w.status.SetText("Fetching video info...")

	go func() {
		info, err := w.cfg.Service.Probe(w.ctx, url)
		fyne.Do(func() {
			w.loadBtn.Enable()
			if err != nil {
				w.status.SetText("")
				dialog.ShowError(fmt.Errorf("Failed to fetch video info: %w", err), w.win)
				return
			}
			w.qualities.Options = qualityLabels(quality.ListResolutions(info))
			w.qualities.Refresh()
			w.qualities.SetSelectedIndex(0)
			w.status.SetText("Qualities loaded.")
		})
	}()
}

func (w *window) onDownload() {
	url := strings.TrimSpace(w.urlEntry.Text)
	if url == "" {
		dialog.ShowInformation("Missing URL", "Please enter a video URL.", w.win)
		return
	}
	label := w.qualities.Selected
	if label == "" {
		dialog.ShowInformation("Missing quality", "Please load qualities and select one.", w.win)
		return
	}
	dir := util.OutputDirOrDefault(strings.TrimSpace(w.outEntry.Text))
	if err := util.EnsureDir(dir); err != nil {
		dialog.ShowError(fmt.Errorf("output folder: %w", err), w.win)
		return
	}

	// Playlists are not expanded here; the window downloads one item.
	req := model.Request{
		URL:        url,
		FormatExpr: quality.ChooseFormatExprFor(label),
		OutDir:     dir,
	}

	w.dlBtn.Disable()
	w.status.SetText("Starting download...")
	w.bar.SetValue(0)

	svc := w.cfg.Service.With(app.WithReporter(w))
	go func() {
		ok := false
		defer func() {
			if r := recover(); r != nil {
				w.logger.Error("download panicked", "panic", r)
			}
			fyne.Do(func() {
				w.status.SetText(finalStatus(ok))
				w.dlBtn.Enable()
			})
		}()
		ok = svc.Download(w.ctx, req)
	}()
}

// Update implements progress.Reporter; it runs on the download goroutine and
// hands the change to the UI goroutine.
func (w *window) Update(u progress.Update) {
	st := stateFor(u)
	fyne.Do(func() {
		if st.SetValue {
			w.bar.SetValue(st.Value)
		}
		w.status.SetText(st.Status)
	})
}

func (w *window) Log(l progress.Log) {
	w.logger.Debug("yt-dlp", "line", l.Line)
}

func (w *window) Result(r progress.Result) {
	if r.Err != nil {
		w.logger.Warn("download failed", "job", r.JobID, "error", r.Err)
	}
}
