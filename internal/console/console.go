// Package console implements the terminal prompt flow: ask for a URL, list
// the qualities yt-dlp reports for it and read a menu choice.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ytpick/internal/model"
	"ytpick/internal/quality"
)

// Prober fetches metadata for a URL without downloading it.
type Prober interface {
	Probe(ctx context.Context, url string) (*model.VideoInfo, error)
}

// Selection is what the user picked.
type Selection struct {
	URL        string
	Quality    quality.Quality
	FormatExpr string
	Info       *model.VideoInfo
}

// BuildMenu returns the menu entries for heights: one per height, then
// best and audio-only.
func BuildMenu(heights []int) []quality.Quality {
	return quality.Choices(heights)
}

// ResolveChoice maps raw menu input to a zero-based index into a menu of n
// entries. Blank, non-numeric and out-of-range input select the first entry.
func ResolveChoice(input string, n int) int {
	i, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || i < 1 || i > n {
		return 0
	}
	return i - 1
}

// WriteMenu prints the numbered menu.
func WriteMenu(w io.Writer, heights []int, menu []quality.Quality) {
	fmt.Fprintln(w, "Available qualities:")
	if len(heights) == 0 {
		fmt.Fprintln(w, "  (no discrete video heights detected)")
	}
	for i, q := range menu {
		fmt.Fprintf(w, "  %d. %s\n", i+1, q.Label())
	}
}

// Prompt runs the interactive selection. url may be pre-filled from the
// command line; otherwise it is read from in. The second return value is
// false when the flow ended early, after printing why.
func Prompt(ctx context.Context, in io.Reader, out io.Writer, url string, p Prober) (Selection, bool) {
	r := bufio.NewReader(in)

	url = strings.TrimSpace(url)
	if url == "" {
		fmt.Fprint(out, "Paste video URL: ")
		url = readLine(r)
	}
	if url == "" {
		fmt.Fprintln(out, "No URL provided. Exiting.")
		return Selection{}, false
	}

	fmt.Fprintln(out, "Fetching available qualities...")
	info, err := p.Probe(ctx, url)
	if err != nil {
		fmt.Fprintf(out, "Failed to fetch video info: %v\n", err)
		return Selection{}, false
	}
	if info.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", info.Title)
	}

	heights := quality.ListResolutions(info)
	menu := BuildMenu(heights)
	WriteMenu(out, heights, menu)
	fmt.Fprintf(out, "Choose quality [1-%d] (default 1): ", len(menu))
	q := menu[ResolveChoice(readLine(r), len(menu))]

	return Selection{
		URL:        url,
		Quality:    q,
		FormatExpr: quality.ChooseFormatExpr(q),
		Info:       info,
	}, true
}

// readLine returns the next trimmed line; EOF counts as a blank answer.
func readLine(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
