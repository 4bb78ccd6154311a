package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ytpick/internal/gui"
	"ytpick/internal/util"
)

const (
	ExitOK       = 0
	ExitCLIError = 1
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// env is what the commands touch outside the process. Tests replace it.
type env struct {
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	runner       util.CmdRunner // nil runs real processes
	isTerminal   func() bool
	guiAvailable func() bool
	runGUI       func(gui.Config) error
}

func defaultEnv() *env {
	return &env{
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		isTerminal:   isTerminal,
		guiAvailable: gui.Available,
		runGUI:       gui.Run,
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "ytpick [url]",
		Short: "Pick a quality and download it with yt-dlp",
		Long: "ytpick lists the resolutions yt-dlp reports for a video, lets you pick one " +
			"in a desktop window or at the terminal, and downloads it as MP4 (or audio only).",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args, e)
		},
	}
	root.SetIn(e.stdin)
	root.SetOut(e.stdout)
	root.SetErr(e.stderr)

	// Persistent flags available to all subcommands
	root.PersistentFlags().BoolP("verbose", "v", false, "Log subprocess commands and output")
	root.PersistentFlags().String("dl-binary", "", "Path to yt-dlp or youtube-dl")

	root.Flags().StringP("output", "o", ".", "Output folder for downloads")
	root.Flags().Bool("console", false, "Use console prompts instead of the desktop window")
	root.Flags().Bool("playlist", false, "Download the entire playlist if the URL is a playlist")

	root.AddCommand(newFormatsCmd(e))
	root.AddCommand(newDoctorCmd(e))
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	return newRootCmd(defaultEnv()).ExecuteContext(ctx)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
