package quality

import (
	"strconv"
	"strings"
)

// Codec prefixes preferred for the first fallback tier (H.264 video, AAC audio).
const (
	CompatibleVideoCodec = "avc1"
	CompatibleAudioCodec = "mp4a"
)

// Filter is a single bracketed condition, e.g. [height<=1080].
type Filter struct {
	Key   string
	Op    string
	Value string
}

func (f Filter) String() string {
	return "[" + f.Key + f.Op + f.Value + "]"
}

// Stream selects one stream: a base selector such as bestvideo plus filters.
type Stream struct {
	Base    string
	Filters []Filter
}

func (s Stream) String() string {
	var b strings.Builder
	b.WriteString(s.Base)
	for _, f := range s.Filters {
		b.WriteString(f.String())
	}
	return b.String()
}

// Tier is a merge group: its streams are downloaded together and muxed.
type Tier []Stream

func (t Tier) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = s.String()
	}
	return strings.Join(parts, "+")
}

// Expr is an ordered list of tiers; yt-dlp uses the first one it can satisfy.
type Expr []Tier

func (e Expr) String() string {
	parts := make([]string, len(e))
	for i, t := range e {
		parts[i] = t.String()
	}
	return strings.Join(parts, "/")
}

func maxHeight(h int) Filter {
	return Filter{Key: "height", Op: "<=", Value: strconv.Itoa(h)}
}

func prefix(key, value string) Filter {
	return Filter{Key: key, Op: "^=", Value: value}
}

// BuildExpr returns the structured format expression for q.
func BuildExpr(q Quality) Expr {
	switch q.Kind {
	case KindBest:
		return Expr{
			{{Base: "bestvideo"}, {Base: "bestaudio"}},
			{{Base: "best"}},
		}
	case KindAudio:
		return Expr{{{Base: "bestaudio"}}}
	case KindHeight:
		h := maxHeight(q.Height)
		return Expr{
			{
				{Base: "bestvideo", Filters: []Filter{h, prefix("vcodec", CompatibleVideoCodec)}},
				{Base: "bestaudio", Filters: []Filter{prefix("acodec", CompatibleAudioCodec)}},
			},
			{
				{Base: "bestvideo", Filters: []Filter{h}},
				{Base: "bestaudio"},
			},
			{
				{Base: "best", Filters: []Filter{h}},
			},
		}
	default:
		return Expr{{{Base: "best"}}}
	}
}

// ChooseFormatExpr returns the yt-dlp -f selector for q.
func ChooseFormatExpr(q Quality) string {
	return BuildExpr(q).String()
}

// ChooseFormatExprFor parses raw and returns its selector; unparseable input
// falls back to a plain "best".
func ChooseFormatExprFor(raw string) string {
	return ChooseFormatExpr(Parse(raw))
}
