package util

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL trims the input and adds an https scheme when it is missing,
// so "youtu.be/abc" is accepted like the full form. It does not restrict the
// host: yt-dlp decides which sites it can extract.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}
	u, err := url.Parse(raw)
	if err == nil && (u.Scheme == "" || u.Host == "") {
		if u2, e2 := url.Parse("https://" + raw); e2 == nil {
			u = u2
		}
	}
	if err != nil || u.Scheme == "" || u.Host == "" || !strings.Contains(u.Host, ".") {
		return "", fmt.Errorf("invalid URL %q", raw)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q in %q", u.Scheme, raw)
	}
	return u.String(), nil
}

// IsPlaylistURL reports whether the URL references a playlist, either as a
// /playlist page or through a list= query parameter.
func IsPlaylistURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if strings.HasSuffix(strings.TrimSuffix(u.Path, "/"), "/playlist") {
		return true
	}
	return u.Query().Get("list") != ""
}
