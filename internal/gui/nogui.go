//go:build nogui

package gui

// Available is always false in builds without the desktop toolkit.
func Available() bool { return false }

// Run always fails with ErrUnavailable.
func Run(Config) error { return ErrUnavailable }
