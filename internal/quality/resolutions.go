package quality

import (
	"github.com/duke-git/lancet/v2/slice"

	"ytpick/internal/model"
)

// ListResolutions returns the distinct heights of all video-bearing variants,
// highest first. Variants without a video codec or height are ignored.
func ListResolutions(info *model.VideoInfo) []int {
	if info == nil {
		return []int{}
	}
	heights := make([]int, 0, len(info.Formats))
	for _, f := range info.Formats {
		if !f.HasVideo() || f.Height == nil {
			continue
		}
		heights = append(heights, *f.Height)
	}
	heights = slice.Unique(heights)
	slice.SortBy(heights, func(a, b int) bool { return a > b })
	return heights
}

// ApproxSize estimates the bytes yt-dlp would fetch for q: the largest
// matching video variant plus the largest audio-only variant when the video
// carries no audio. It returns 0 when sizes are not reported.
func ApproxSize(info *model.VideoInfo, q Quality) int64 {
	if info == nil {
		return 0
	}
	var bestVideo, bestAudio model.Format
	for _, f := range info.Formats {
		switch {
		case f.HasVideo():
			if q.Kind == KindHeight && (f.Height == nil || *f.Height > q.Height) {
				continue
			}
			if f.Size > bestVideo.Size {
				bestVideo = f
			}
		case f.HasAudio():
			if f.Size > bestAudio.Size {
				bestAudio = f
			}
		}
	}
	switch q.Kind {
	case KindAudio:
		return bestAudio.Size
	case KindHeight, KindBest:
		if bestVideo.Size == 0 {
			return 0
		}
		if bestVideo.HasAudio() {
			return bestVideo.Size
		}
		return bestVideo.Size + bestAudio.Size
	}
	return 0
}
