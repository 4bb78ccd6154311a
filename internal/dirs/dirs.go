package dirs

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "ytpick"

// AppName returns the canonical application name for directory paths.
func AppName() string {
	return appName
}

// ConfigDir returns the app's configuration directory.
// - Linux: $XDG_CONFIG_HOME/ytpick or ~/.config/ytpick
// - macOS: ~/Library/Application Support/ytpick
// - Windows: %AppData%/ytpick (fallback to os.UserConfigDir)
func ConfigDir() (string, error) {
	return configDir(runtime.GOOS, os.Getenv, os.UserHomeDir, os.UserConfigDir)
}

func configDir(goos string, getenv func(string) string, home, userConfig func() (string, error)) (string, error) {
	switch goos {
	case "darwin":
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, "Library", "Application Support", AppName()), nil
	case "linux":
		if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName()), nil
		}
		h, err := home()
		if err != nil {
			return "", err
		}
		return filepath.Join(h, ".config", AppName()), nil
	default:
		cfg, err := userConfig()
		if err != nil {
			return "", err
		}
		return filepath.Join(cfg, AppName()), nil
	}
}
