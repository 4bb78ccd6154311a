package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ytpick/internal/model"
	"ytpick/internal/progress"
	"ytpick/internal/quality"
)

type fakeProber struct {
	info *model.VideoInfo
	err  error
	urls []string
}

func (f *fakeProber) Probe(_ context.Context, url string) (*model.VideoInfo, error) {
	f.urls = append(f.urls, url)
	return f.info, f.err
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func sampleInfo() *model.VideoInfo {
	return &model.VideoInfo{
		Title: "Clip",
		Formats: []model.Format{
			{ID: "137", VCodec: strp("avc1"), Height: intp(1080)},
			{ID: "22", VCodec: strp("avc1"), ACodec: strp("mp4a"), Height: intp(720)},
			{ID: "140", VCodec: strp("none"), ACodec: strp("mp4a")},
		},
	}
}

func TestResolveChoice(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want int
	}{
		{in: "", n: 4, want: 0},
		{in: "1", n: 4, want: 0},
		{in: "3", n: 4, want: 2},
		{in: " 4 \n", n: 4, want: 3},
		{in: "5", n: 4, want: 0},
		{in: "0", n: 4, want: 0},
		{in: "-2", n: 4, want: 0},
		{in: "abc", n: 4, want: 0},
		{in: "2", n: 2, want: 1},
	}
	for _, tt := range tests {
		if got := ResolveChoice(tt.in, tt.n); got != tt.want {
			t.Errorf("ResolveChoice(%q, %d) = %d, want %d", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestBuildMenuWithoutHeights(t *testing.T) {
	menu := BuildMenu(nil)
	if len(menu) != 2 || menu[0] != quality.Best() || menu[1] != quality.Audio() {
		t.Fatalf("BuildMenu(nil) = %+v", menu)
	}
	var buf bytes.Buffer
	WriteMenu(&buf, nil, menu)
	want := "Available qualities:\n" +
		"  (no discrete video heights detected)\n" +
		"  1. best (best available)\n" +
		"  2. audio-only\n"
	if buf.String() != want {
		t.Errorf("WriteMenu() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPromptReadsURLAndChoice(t *testing.T) {
	p := &fakeProber{info: sampleInfo()}
	var out bytes.Buffer
	in := strings.NewReader("https://youtu.be/abc\n2\n")

	sel, ok := Prompt(context.Background(), in, &out, "", p)
	if !ok {
		t.Fatalf("Prompt ended early:\n%s", out.String())
	}
	if sel.URL != "https://youtu.be/abc" || len(p.urls) != 1 {
		t.Errorf("URL = %q, probed %v", sel.URL, p.urls)
	}
	if sel.Quality != quality.Height(720) {
		t.Errorf("Quality = %+v, want 720p", sel.Quality)
	}
	if sel.FormatExpr != quality.ChooseFormatExpr(quality.Height(720)) {
		t.Errorf("FormatExpr = %q", sel.FormatExpr)
	}
	got := out.String()
	for _, want := range []string{"Paste video URL: ", "  1. 1080p", "  2. 720p", "  3. best (best available)", "  4. audio-only", "Choose quality [1-4] (default 1): "} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPromptDefaultsToFirstOption(t *testing.T) {
	p := &fakeProber{info: sampleInfo()}
	var out bytes.Buffer
	sel, ok := Prompt(context.Background(), strings.NewReader("99\n"), &out, "https://youtu.be/abc", p)
	if !ok {
		t.Fatal("Prompt ended early")
	}
	if sel.Quality != quality.Height(1080) {
		t.Errorf("Quality = %+v, want 1080p", sel.Quality)
	}
	if strings.Contains(out.String(), "Paste video URL") {
		t.Error("should not ask for a URL given on the command line")
	}
}

func TestPromptBlankURL(t *testing.T) {
	p := &fakeProber{}
	var out bytes.Buffer
	if _, ok := Prompt(context.Background(), strings.NewReader("\n"), &out, "", p); ok {
		t.Fatal("expected early exit")
	}
	if !strings.Contains(out.String(), "No URL provided. Exiting.") {
		t.Errorf("output = %q", out.String())
	}
	if len(p.urls) != 0 {
		t.Error("probe should not run without a URL")
	}
}

func TestPromptProbeFailure(t *testing.T) {
	p := &fakeProber{err: errors.New("network down")}
	var out bytes.Buffer
	if _, ok := Prompt(context.Background(), strings.NewReader(""), &out, "https://youtu.be/abc", p); ok {
		t.Fatal("expected early exit")
	}
	if !strings.Contains(out.String(), "Failed to fetch video info: network down") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLineReporterThrottles(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineReporter(&buf)
	for _, pct := range []float64{0, 1, 5, 10, 12, 55, 99} {
		r.Update(progress.Update{Status: progress.StatusDownloading, Percent: pct, Filename: "a.mp4", Message: "dl"})
	}
	r.Update(progress.Update{Status: progress.StatusFinished, Percent: 100, Message: "Download completed."})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 0, 10, 55, 99 cross a new 10% step.
	if len(lines) != 5 {
		t.Fatalf("lines = %q", lines)
	}
	if lines[4] != "Download completed." {
		t.Errorf("last line = %q", lines[4])
	}
}
