// Package downloader drives the yt-dlp binary: a metadata-only probe and the
// actual download with progress reporting.
package downloader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/util"
)

// Options controls downloader behavior.
type Options struct {
	DownloaderPath string // Path to yt-dlp or youtube-dl
	Verbose        bool
	Runner         util.CmdRunner    // nil uses the exec runner
	Reporter       progress.Reporter // optional
	JobID          string
	Logger         hclog.Logger
}

func (o Options) runner() util.CmdRunner {
	if o.Runner != nil {
		return o.Runner
	}
	return util.NewDefaultRunner(o.logger())
}

func (o Options) logger() hclog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return hclog.NewNullLogger()
}

// legacy reports whether the binary is youtube-dl, which lacks --progress-template and --print.
func (o Options) legacy() bool {
	base := strings.ToLower(filepath.Base(o.DownloaderPath))
	return strings.HasPrefix(base, "youtube-dl")
}

// Outcome describes a finished download.
type Outcome struct {
	Files []string // final paths reported by yt-dlp after merging/moving
}

// Probe fetches metadata without downloading any media.
func Probe(ctx context.Context, url string, opts Options) (*model.VideoInfo, error) {
	if opts.DownloaderPath == "" {
		return nil, errors.New("downloader path is required")
	}
	args := []string{
		"--dump-single-json",
		"--no-playlist",
		"--playlist-items", "1",
		"--skip-download",
		"--no-warnings",
		url,
	}
	res, runErr := opts.runner().Run(ctx, util.CmdSpec{
		Path:    opts.DownloaderPath,
		Args:    args,
		Verbose: opts.Verbose,
	})
	if runErr != nil && strings.TrimSpace(string(res.Stdout)) == "" {
		if last := util.LastLine(res.Stderr); last != "" {
			return nil, errors.Wrap(runErr, last)
		}
		return nil, errors.Wrap(runErr, "metadata fetch failed")
	}
	info, err := ParseInfo(res.Stdout)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("probed", "id", info.ID, "title", info.Title, "formats", len(info.Formats))
	return info, nil
}

// BuildArgs returns the yt-dlp argument list for req.
func BuildArgs(req model.Request, legacy bool) []string {
	args := []string{
		"-f", req.FormatExpr,
		"-o", req.OutputTemplate(),
	}
	if req.Playlist {
		args = append(args, "--yes-playlist")
	} else {
		args = append(args, "--no-playlist")
	}
	args = append(args, "--merge-output-format", req.Merge(), "--newline")
	if !legacy {
		args = append(args,
			"--progress",
			"--progress-template", "download:"+progressTemplate,
			"--print", "after_move:"+filePrefix+"%(filepath)s",
		)
	}
	return append(args, req.URL)
}

// Download runs yt-dlp for req, forwarding progress to opts.Reporter.
func Download(ctx context.Context, req model.Request, opts Options) (Outcome, error) {
	var out Outcome
	if opts.DownloaderPath == "" {
		return out, errors.New("downloader path is required")
	}
	if req.URL == "" {
		return out, errors.New("URL is required")
	}
	if req.FormatExpr == "" {
		return out, errors.New("format expression is required")
	}

	legacy := opts.legacy()
	onLine := func(line string) {
		if path, ok := parseFileLine(line); ok {
			out.Files = append(out.Files, path)
			return
		}
		if u, ok := parseLine(line, opts.JobID, legacy); ok {
			report(opts.Reporter, u)
			return
		}
		if opts.Reporter != nil {
			opts.Reporter.Log(progress.Log{JobID: opts.JobID, Stream: progress.StreamStdout, Line: line})
		}
	}

	res, runErr := opts.runner().Run(ctx, util.CmdSpec{
		Path:       opts.DownloaderPath,
		Args:       BuildArgs(req, legacy),
		Verbose:    opts.Verbose,
		StdoutLine: onLine,
		StderrLine: func(line string) {
			if opts.Reporter != nil {
				opts.Reporter.Log(progress.Log{JobID: opts.JobID, Stream: progress.StreamStderr, Line: line})
			}
		},
	})
	if runErr != nil {
		report(opts.Reporter, progress.Update{JobID: opts.JobID, Status: progress.StatusError, Percent: -1, Message: "Download error."})
		if last := util.LastLine(res.Stderr); last != "" {
			return out, errors.Wrap(runErr, last)
		}
		return out, errors.Wrap(runErr, "downloader failed")
	}
	opts.logger().Debug("downloaded", "url", req.URL, "files", out.Files)
	return out, nil
}

func parseLine(line, jobID string, legacy bool) (progress.Update, bool) {
	if !legacy {
		if u, ok := ParseTemplateLine(line, jobID); ok {
			return u, true
		}
	}
	return ParseProgress(line, jobID)
}

func report(r progress.Reporter, u progress.Update) {
	if r != nil {
		r.Update(u)
	}
}

