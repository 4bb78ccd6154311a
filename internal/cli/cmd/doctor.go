package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ytpick/internal/config"
	"ytpick/internal/util/deps"
)

func newDoctorCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose external dependencies (yt-dlp/youtube-dl, ffmpeg)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("config: %w", err)}
			}
			out := cmd.OutOrStdout()
			if dl, err := deps.FindDownloader(s.DLBinary); err != nil {
				fmt.Fprintf(out, "Downloader: missing (%v)\n%s\n", err, deps.InstallHint)
			} else {
				fmt.Fprintf(out, "Downloader: %s\n", dl)
			}
			if ff, err := deps.FindFFmpeg(); err != nil {
				fmt.Fprintf(out, "FFmpeg:     missing (%v)\n", err)
			} else {
				fmt.Fprintf(out, "FFmpeg:     %s\n", ff)
			}
			fmt.Fprintf(out, "GUI:        %v\n", e.guiAvailable())
			return nil
		},
	}
}
