// Package app wires the downloader to the front ends: it resolves the yt-dlp
// binary, probes metadata and runs a single download, reporting the outcome
// as plain messages.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"ytpick/internal/downloader"
	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/util"
	"ytpick/internal/util/deps"
)

// Service probes and downloads URLs through yt-dlp.
type Service struct {
	dlBinary string // user-supplied name or path, resolved lazily
	dlPath   string // already resolved path; skips lookup
	verbose  bool
	runner   util.CmdRunner
	reporter progress.Reporter
	logger   hclog.Logger
	out      io.Writer
}

// Option configures a Service.
type Option func(*Service)

// WithDownloaderBinary sets a custom yt-dlp name or path to look up.
func WithDownloaderBinary(b string) Option {
	return func(s *Service) {
		s.dlBinary = b
	}
}

// WithDownloaderPath sets an already resolved downloader path.
func WithDownloaderPath(p string) Option {
	return func(s *Service) {
		s.dlPath = p
	}
}

// WithVerbose echoes subprocess output.
func WithVerbose(v bool) Option {
	return func(s *Service) {
		s.verbose = v
	}
}

// WithRunner injects a custom command runner (useful for testing).
func WithRunner(r util.CmdRunner) Option {
	return func(s *Service) {
		s.runner = r
	}
}

// WithReporter attaches a progress reporter.
func WithReporter(rp progress.Reporter) Option {
	return func(s *Service) {
		s.reporter = rp
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l hclog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithOutput sets where user-facing messages are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		s.out = w
	}
}

// NewService constructs a Service with the provided options.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = hclog.NewNullLogger()
	}
	if s.runner == nil {
		s.runner = util.NewDefaultRunner(s.logger)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	return s
}

// With returns a copy of s with opts applied on top.
func (s *Service) With(opts ...Option) *Service {
	c := *s
	for _, o := range opts {
		o(&c)
	}
	return &c
}

// DownloaderPath resolves and caches the yt-dlp binary.
func (s *Service) DownloaderPath() (string, error) {
	if s.dlPath != "" {
		return s.dlPath, nil
	}
	p, err := deps.FindDownloader(s.dlBinary)
	if err != nil {
		return "", err
	}
	s.dlPath = p
	s.logger.Debug("downloader resolved", "path", p)
	return p, nil
}

func (s *Service) options(jobID string) downloader.Options {
	return downloader.Options{
		DownloaderPath: s.dlPath,
		Verbose:        s.verbose,
		Runner:         s.runner,
		Reporter:       s.reporter,
		JobID:          jobID,
		Logger:         s.logger,
	}
}

// Probe fetches metadata for url without downloading media.
func (s *Service) Probe(ctx context.Context, url string) (*model.VideoInfo, error) {
	if _, err := s.DownloaderPath(); err != nil {
		return nil, err
	}
	info, err := downloader.Probe(ctx, url, s.options(""))
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	return info, nil
}

// Download runs req and reports whether it succeeded. It never returns an
// error: every failure is printed and turned into false.
func (s *Service) Download(ctx context.Context, req model.Request) bool {
	if _, err := s.DownloaderPath(); err != nil {
		fmt.Fprintf(s.out, "Download failed: %v\n", err)
		if errors.Is(err, deps.ErrDownloaderMissing) {
			fmt.Fprintln(s.out, deps.InstallHint)
		}
		return false
	}
	req.OutDir = util.OutputDirOrDefault(req.OutDir)
	if err := util.EnsureDir(req.OutDir); err != nil {
		fmt.Fprintf(s.out, "Download failed: %v\n", err)
		return false
	}

	jobID := uuid.NewString()
	fmt.Fprintf(s.out, "Starting download (format: %s)...\n", req.FormatExpr)
	s.logger.Debug("download started", "job", jobID, "url", req.URL, "format", req.FormatExpr, "playlist", req.Playlist)

	out, err := downloader.Download(ctx, req, s.options(jobID))
	if err != nil {
		s.emitResult(jobID, err)
		fmt.Fprintf(s.out, "Download failed: %v\n", err)
		return false
	}
	s.emitResult(jobID, nil)
	for _, f := range out.Files {
		fmt.Fprintf(s.out, "Saved: %s\n", f)
	}
	return true
}

func (s *Service) emitResult(jobID string, err error) {
	if s.reporter == nil {
		return
	}
	s.reporter.Result(progress.Result{JobID: jobID, OK: err == nil, Err: err})
}
