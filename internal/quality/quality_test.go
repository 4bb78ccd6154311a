package quality

import (
	"reflect"
	"strings"
	"testing"

	"ytpick/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Quality
	}{
		{in: "1080", want: Quality{Kind: KindHeight, Height: 1080}},
		{in: "720p", want: Quality{Kind: KindHeight, Height: 720}},
		{in: " 480P ", want: Quality{Kind: KindHeight, Height: 480}},
		{in: "best", want: Quality{Kind: KindBest}},
		{in: LabelBest, want: Quality{Kind: KindBest}},
		{in: "audio", want: Quality{Kind: KindAudio}},
		{in: LabelAudio, want: Quality{Kind: KindAudio}},
		{in: "not-a-number", want: Quality{Kind: KindInvalid}},
		{in: "", want: Quality{Kind: KindInvalid}},
		{in: "0", want: Quality{Kind: KindHeight, Height: 0}},
		{in: "-360", want: Quality{Kind: KindHeight, Height: -360}},
		{in: "1080.5", want: Quality{Kind: KindInvalid}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Parse(tt.in); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabelRoundTrip(t *testing.T) {
	for _, q := range []Quality{Height(2160), Height(144), Best(), Audio()} {
		if got := Parse(q.Label()); got != q {
			t.Errorf("Parse(%q) = %+v, want %+v", q.Label(), got, q)
		}
		if got := Parse(q.String()); got != q {
			t.Errorf("Parse(%q) = %+v, want %+v", q.String(), got, q)
		}
	}
}

func TestChoices(t *testing.T) {
	got := Choices([]int{1080, 720})
	want := []Quality{Height(1080), Height(720), Best(), Audio()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Choices() = %+v, want %+v", got, want)
	}

	empty := Choices(nil)
	if len(empty) != 2 || empty[0] != Best() || empty[1] != Audio() {
		t.Errorf("Choices(nil) = %+v, want [best audio]", empty)
	}
}

func TestChooseFormatExpr(t *testing.T) {
	tests := []struct {
		name string
		q    Quality
		want string
	}{
		{
			name: "height 1080",
			q:    Height(1080),
			want: "bestvideo[height<=1080][vcodec^=avc1]+bestaudio[acodec^=mp4a]/bestvideo[height<=1080]+bestaudio/best[height<=1080]",
		},
		{
			name: "height 360",
			q:    Height(360),
			want: "bestvideo[height<=360][vcodec^=avc1]+bestaudio[acodec^=mp4a]/bestvideo[height<=360]+bestaudio/best[height<=360]",
		},
		{name: "best", q: Best(), want: "bestvideo+bestaudio/best"},
		{name: "audio", q: Audio(), want: "bestaudio"},
		{name: "invalid", q: Quality{}, want: "best"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseFormatExpr(tt.q); got != tt.want {
				t.Errorf("ChooseFormatExpr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChooseFormatExprFor(t *testing.T) {
	tests := map[string]string{
		"1080":         ChooseFormatExpr(Height(1080)),
		"best":         "bestvideo+bestaudio/best",
		"audio":        "bestaudio",
		"not-a-number": "best",
		"0":            "bestvideo[height<=0][vcodec^=avc1]+bestaudio[acodec^=mp4a]/bestvideo[height<=0]+bestaudio/best[height<=0]",
	}
	for in, want := range tests {
		if got := ChooseFormatExprFor(in); got != want {
			t.Errorf("ChooseFormatExprFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildExprTiers(t *testing.T) {
	e := BuildExpr(Height(1080))
	if len(e) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(e))
	}
	first := e[0].String()
	if !strings.Contains(first, "[height<=1080]") {
		t.Errorf("first tier %q is not capped at 1080", first)
	}
	if !strings.Contains(first, "[vcodec^="+CompatibleVideoCodec+"]") || !strings.Contains(first, "[acodec^="+CompatibleAudioCodec+"]") {
		t.Errorf("first tier %q does not filter on compatible codecs", first)
	}
	if len(e[2]) != 1 || e[2][0].Base != "best" {
		t.Errorf("last tier = %q, want a single best stream", e[2].String())
	}
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestListResolutions(t *testing.T) {
	info := &model.VideoInfo{
		Formats: []model.Format{
			{ID: "140", VCodec: strp("none"), ACodec: strp("mp4a.40.2")},
			{ID: "137", VCodec: strp("avc1.640028"), Height: intp(1080)},
			{ID: "248", VCodec: strp("vp9"), Height: intp(1080)},
			{ID: "136", VCodec: strp("avc1.4d401f"), Height: intp(720)},
			{ID: "18", VCodec: strp("avc1.42001E"), ACodec: strp("mp4a.40.2"), Height: intp(360)},
			{ID: "sb0", VCodec: strp("none"), Height: intp(90)},
			{ID: "x", VCodec: nil, Height: intp(240)},
			{ID: "y", VCodec: strp("av01"), Height: nil},
			{ID: "401", VCodec: strp("av01.0.12M.08"), Height: intp(2160)},
		},
	}
	got := ListResolutions(info)
	want := []int{2160, 1080, 720, 360}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListResolutions() = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i] >= got[i-1] {
			t.Errorf("not strictly descending at %d: %v", i, got)
		}
	}
}

func TestListResolutionsEmpty(t *testing.T) {
	if got := ListResolutions(nil); len(got) != 0 {
		t.Errorf("ListResolutions(nil) = %v, want empty", got)
	}
	audioOnly := &model.VideoInfo{Formats: []model.Format{{VCodec: strp("none"), ACodec: strp("opus")}}}
	if got := ListResolutions(audioOnly); len(got) != 0 {
		t.Errorf("ListResolutions(audio only) = %v, want empty", got)
	}
}

func TestApproxSize(t *testing.T) {
	info := &model.VideoInfo{
		Formats: []model.Format{
			{ID: "140", VCodec: strp("none"), ACodec: strp("mp4a.40.2"), Size: 3_000_000},
			{ID: "251", VCodec: strp("none"), ACodec: strp("opus"), Size: 4_000_000},
			{ID: "137", VCodec: strp("avc1"), ACodec: strp("none"), Height: intp(1080), Size: 80_000_000},
			{ID: "136", VCodec: strp("avc1"), ACodec: strp("none"), Height: intp(720), Size: 40_000_000},
			{ID: "18", VCodec: strp("avc1"), ACodec: strp("mp4a"), Height: intp(360), Size: 10_000_000},
		},
	}
	tests := []struct {
		name string
		q    Quality
		want int64
	}{
		{name: "1080", q: Height(1080), want: 84_000_000},
		{name: "720", q: Height(720), want: 44_000_000},
		{name: "480 caps to 360 muxed", q: Height(480), want: 10_000_000},
		{name: "best", q: Best(), want: 84_000_000},
		{name: "audio", q: Audio(), want: 4_000_000},
		{name: "below all heights", q: Height(144), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxSize(info, tt.q); got != tt.want {
				t.Errorf("ApproxSize() = %d, want %d", got, tt.want)
			}
		})
	}
	if ApproxSize(nil, Best()) != 0 {
		t.Error("nil info should be 0")
	}
}
