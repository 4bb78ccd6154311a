package model

import "path/filepath"

// DefaultOutputTemplate is the yt-dlp output template used inside the output directory.
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// DefaultMergeFormat is the container yt-dlp remuxes merged video+audio into.
const DefaultMergeFormat = "mp4"

// Format is one encoded variant offered by the host, as reported by yt-dlp.
type Format struct {
	ID     string
	Ext    string
	VCodec *string // nil when absent
	ACodec *string // nil when absent
	Height *int    // nil when absent or not an integer
	FPS    float64 // 0 if unknown
	Size   int64   // filesize or filesize_approx; 0 if unknown
}

// HasVideo reports whether the variant carries a real video stream.
func (f Format) HasVideo() bool {
	return f.VCodec != nil && *f.VCodec != "" && *f.VCodec != "none"
}

// HasAudio reports whether the variant carries a real audio stream.
func (f Format) HasAudio() bool {
	return f.ACodec != nil && *f.ACodec != "" && *f.ACodec != "none"
}

// VideoInfo is the metadata returned by the no-download probe.
type VideoInfo struct {
	ID          string
	Title       string
	Uploader    string
	DurationSec float64
	WebpageURL  string
	IsPlaylist  bool
	EntryCount  int // playlist entries; 0 for single videos
	Formats     []Format
}

// Options holds user-configurable runtime options as parsed from flags, env and config.
type Options struct {
	OutDir   string
	Console  bool // force console input instead of the GUI
	Playlist bool // download the whole playlist when the URL is one
}

// Request is a single download invocation handed to yt-dlp.
type Request struct {
	URL         string
	FormatExpr  string
	OutDir      string
	Template    string // file name template, joined onto OutDir; DefaultOutputTemplate if empty
	Playlist    bool
	MergeFormat string // remux target; DefaultMergeFormat if empty
}

// OutputTemplate returns the full -o value for yt-dlp.
func (r Request) OutputTemplate() string {
	tmpl := r.Template
	if tmpl == "" {
		tmpl = DefaultOutputTemplate
	}
	if r.OutDir == "" {
		return tmpl
	}
	return filepath.Join(r.OutDir, tmpl)
}

// Merge returns the remux container, defaulting to mp4.
func (r Request) Merge() string {
	if r.MergeFormat == "" {
		return DefaultMergeFormat
	}
	return r.MergeFormat
}
