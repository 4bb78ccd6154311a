package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"ytpick/internal/app"
	"ytpick/internal/config"
	"ytpick/internal/console"
	"ytpick/internal/gui"
	"ytpick/internal/logging"
	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/ui"
	"ytpick/internal/util"
)

// newService builds the app service from resolved settings.
func newService(e *env, s config.Settings, logger hclog.Logger) *app.Service {
	opts := []app.Option{
		app.WithDownloaderBinary(s.DLBinary),
		app.WithVerbose(s.Verbose),
		app.WithLogger(logger),
		app.WithOutput(e.stdout),
	}
	if e.runner != nil {
		opts = append(opts, app.WithRunner(e.runner))
	}
	return app.NewService(opts...)
}

func runPick(cmd *cobra.Command, args []string, e *env) error {
	s, err := config.Load(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("config: %w", err)}
	}
	logger := logging.New(s.Verbose, e.stderr)
	svc := newService(e, s, logger)

	var url string
	if len(args) > 0 {
		url = args[0]
	}
	opts := model.Options{
		OutDir:   util.OutputDirOrDefault(s.Output),
		Console:  s.Console,
		Playlist: s.Playlist,
	}
	logger.Debug("starting", "console", opts.Console, "playlist", opts.Playlist, "output", opts.OutDir)

	if !opts.Console {
		if e.guiAvailable() {
			err := e.runGUI(gui.Config{
				Service: svc,
				URL:     url,
				OutDir:  util.AbsDir(opts.OutDir),
				Logger:  logger.Named("gui"),
				Ctx:     cmd.Context(),
			})
			if !errors.Is(err, gui.ErrUnavailable) {
				return err
			}
		}
		fmt.Fprintln(e.stdout, "GUI not available. Falling back to console input.")
	}

	runConsole(cmd.Context(), e, svc, url, opts)
	return nil
}

// runConsole prompts for a URL and quality, then downloads. Failures are
// printed; they never become a non-zero exit.
func runConsole(ctx context.Context, e *env, svc *app.Service, url string, opts model.Options) {
	sel, ok := console.Prompt(ctx, e.stdin, e.stdout, url, svc)
	if !ok {
		return
	}
	fmt.Fprintf(e.stdout, "\nSelected: %s -> using format expression: %s\n", sel.Quality.Label(), sel.FormatExpr)

	if opts.Playlist && !util.IsPlaylistURL(sel.URL) {
		fmt.Fprintln(e.stdout, "Note: --playlist given but the URL does not look like a playlist.")
	}
	req := model.Request{
		URL:        sel.URL,
		FormatExpr: sel.FormatExpr,
		OutDir:     opts.OutDir,
		Playlist:   opts.Playlist,
	}

	var done bool
	if e.isTerminal() {
		title := sel.URL
		if sel.Info != nil && sel.Info.Title != "" {
			title = sel.Info.Title
		}
		var err error
		done, err = ui.Run(ctx, title, func(ctx context.Context, rep progress.Reporter, out io.Writer) bool {
			return svc.With(app.WithReporter(rep), app.WithOutput(out)).Download(ctx, req)
		})
		if err != nil {
			fmt.Fprintf(e.stdout, "Download failed: %v\n", err)
		}
	} else {
		done = svc.With(app.WithReporter(console.NewLineReporter(e.stdout))).Download(ctx, req)
	}

	if done {
		fmt.Fprintln(e.stdout, "\nDownload finished.")
	} else {
		fmt.Fprintln(e.stdout, "\nDownload did not complete.")
	}
}
