package deps

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrDownloaderMissing is returned when neither yt-dlp nor youtube-dl can be found.
var ErrDownloaderMissing = errors.New("yt-dlp is not installed")

// InstallHint is printed next to ErrDownloaderMissing.
const InstallHint = "Install it with one of:\n  pip install -U yt-dlp\n  brew install yt-dlp\n  or download a release from https://github.com/yt-dlp/yt-dlp/releases"

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// FindDownloader returns the path to yt-dlp or youtube-dl.
// If customPath is non-empty, it tries that path or looks it up in PATH.
func FindDownloader(customPath string) (string, error) {
	if customPath != "" {
		if fi, err := os.Stat(customPath); err == nil && !fi.IsDir() {
			return customPath, nil
		}
		if p, err := lookPath(customPath); err == nil {
			return p, nil
		}
		return "", fmt.Errorf("%w: could not find downloader at %q", ErrDownloaderMissing, customPath)
	}
	for _, name := range []string{"yt-dlp", "youtube-dl"} {
		if p, err := lookPath(name); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: could not find yt-dlp or youtube-dl in PATH", ErrDownloaderMissing)
}

// FindFFmpeg returns the path to the ffmpeg binary in PATH.
// yt-dlp needs it to merge separate video and audio streams.
func FindFFmpeg() (string, error) {
	if p, err := lookPath("ffmpeg"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find ffmpeg in PATH; merging video and audio streams will fail")
}
