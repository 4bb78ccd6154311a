package util

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/duke-git/lancet/v2/fileutil"
)

// EnsureDir creates the directory path if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	path = filepath.Clean(path)
	if fileutil.IsExist(path) {
		if !fileutil.IsDir(path) {
			return errors.New("not a directory: " + path)
		}
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// AbsDir returns dir as an absolute path, resolving a blank dir to the
// working directory. It falls back to the cleaned relative path when the
// working directory cannot be determined.
func AbsDir(dir string) string {
	dir = OutputDirOrDefault(dir)
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// OutputDirOrDefault returns dir, or "." when it is blank.
func OutputDirOrDefault(dir string) string {
	if dir == "" {
		return "."
	}
	return filepath.Clean(dir)
}
