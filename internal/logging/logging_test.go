package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := New(false, &buf)
	quiet.Debug("hidden")
	quiet.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, Name) {
		t.Errorf("warn line missing or unnamed: %q", out)
	}

	buf.Reset()
	verbose := New(true, &buf)
	if !verbose.IsDebug() {
		t.Fatal("verbose logger should be at debug level")
	}
	verbose.Debug("exec", "cmd", "yt-dlp --version")
	if !strings.Contains(buf.String(), "yt-dlp --version") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}
