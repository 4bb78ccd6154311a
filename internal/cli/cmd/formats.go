package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ytpick/internal/config"
	"ytpick/internal/logging"
	"ytpick/internal/quality"
	"ytpick/internal/util"
	"ytpick/internal/util/deps"
	"ytpick/internal/util/format"
)

func newFormatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:           "formats <url>",
		Short:         "List available qualities and their format expressions without downloading",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := util.NormalizeURL(args[0])
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			s, err := config.Load(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("config: %w", err)}
			}
			svc := newService(e, s, logging.New(s.Verbose, e.stderr))

			out := cmd.OutOrStdout()
			info, err := svc.Probe(cmd.Context(), url)
			if err != nil {
				fmt.Fprintf(out, "Failed to fetch video info: %v\n", err)
				if errors.Is(err, deps.ErrDownloaderMissing) {
					fmt.Fprintln(out, deps.InstallHint)
				}
				return nil
			}

			fmt.Fprintf(out, "Title:    %s\n", info.Title)
			if info.Uploader != "" {
				fmt.Fprintf(out, "Uploader: %s\n", info.Uploader)
			}
			if info.IsPlaylist {
				fmt.Fprintf(out, "Playlist: %d entries (qualities of the first entry)\n", info.EntryCount)
			}
			fmt.Fprintln(out)

			heights := quality.ListResolutions(info)
			if len(heights) == 0 {
				fmt.Fprintln(out, "(no discrete video heights detected)")
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "QUALITY\tSIZE\tFORMAT EXPRESSION")
			for _, q := range quality.Choices(heights) {
				size := "?"
				if n := quality.ApproxSize(info, q); n > 0 {
					size = "~" + format.HumanizeBytes(n)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", q.Label(), size, quality.ChooseFormatExpr(q))
			}
			return tw.Flush()
		},
	}
}
