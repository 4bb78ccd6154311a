// Package quality maps a user's quality choice to a yt-dlp format expression
// and lists the video heights a probed video offers.
package quality

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by a Quality.
type Kind int

const (
	KindInvalid Kind = iota
	KindHeight
	KindBest
	KindAudio
)

// Menu labels shared by the console and GUI front ends.
const (
	LabelBest  = "best (best available)"
	LabelAudio = "audio-only"
)

// Quality is a user's selection: a pixel height, best available, or audio only.
type Quality struct {
	Kind   Kind
	Height int // set only for KindHeight
}

// Height returns a height-capped selection. Any integer is kept as given;
// yt-dlp simply finds no variant under a non-positive cap.
func Height(h int) Quality {
	return Quality{Kind: KindHeight, Height: h}
}

// Best returns the unconstrained best video+audio selection.
func Best() Quality { return Quality{Kind: KindBest} }

// Audio returns the audio-only selection.
func Audio() Quality { return Quality{Kind: KindAudio} }

// Parse accepts "1080", "1080p", "best", "audio", "audio-only" and the menu
// labels. Anything else yields a KindInvalid quality.
func Parse(s string) Quality {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "best", LabelBest:
		return Best()
	case "audio", LabelAudio:
		return Audio()
	}
	v = strings.TrimSuffix(v, "p")
	h, err := strconv.Atoi(v)
	if err != nil {
		return Quality{Kind: KindInvalid}
	}
	return Height(h)
}

// Label renders the quality the way the selection menus show it.
func (q Quality) Label() string {
	switch q.Kind {
	case KindHeight:
		return strconv.Itoa(q.Height) + "p"
	case KindBest:
		return LabelBest
	case KindAudio:
		return LabelAudio
	default:
		return "invalid"
	}
}

// String returns the short form accepted by Parse.
func (q Quality) String() string {
	switch q.Kind {
	case KindHeight:
		return strconv.Itoa(q.Height)
	case KindBest:
		return "best"
	case KindAudio:
		return "audio"
	default:
		return "invalid"
	}
}

// Choices returns the menu options for the given heights: one per height,
// followed by best and audio-only.
func Choices(heights []int) []Quality {
	out := make([]Quality, 0, len(heights)+2)
	for _, h := range heights {
		out = append(out, Height(h))
	}
	return append(out, Best(), Audio())
}
