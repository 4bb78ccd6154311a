package downloader

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"ytpick/internal/model"
)

// ParseInfo decodes yt-dlp JSON metadata. When the output holds several JSON
// documents (one per line), the last one with an id wins.
func ParseInfo(data []byte) (*model.VideoInfo, error) {
	doc, ok := lastDocument(data)
	if !ok {
		return nil, errors.New("parse metadata JSON: no JSON document in downloader output")
	}

	info := &model.VideoInfo{
		ID:          doc.Get("id").String(),
		Title:       doc.Get("title").String(),
		Uploader:    doc.Get("uploader").String(),
		DurationSec: doc.Get("duration").Float(),
		WebpageURL:  doc.Get("webpage_url").String(),
	}

	formats := doc.Get("formats")
	if doc.Get("_type").String() == "playlist" {
		info.IsPlaylist = true
		entries := doc.Get("entries").Array()
		info.EntryCount = int(doc.Get("playlist_count").Int())
		if info.EntryCount == 0 {
			info.EntryCount = len(entries)
		}
		// Qualities are offered from the first entry.
		if len(entries) > 0 {
			formats = entries[0].Get("formats")
		}
	}

	formats.ForEach(func(_, f gjson.Result) bool {
		info.Formats = append(info.Formats, parseFormat(f))
		return true
	})
	return info, nil
}

func parseFormat(f gjson.Result) model.Format {
	fm := model.Format{
		ID:  f.Get("format_id").String(),
		Ext: f.Get("ext").String(),
		FPS: f.Get("fps").Float(),
	}
	fm.VCodec = optString(f.Get("vcodec"))
	fm.ACodec = optString(f.Get("acodec"))
	if h := f.Get("height"); h.Type == gjson.Number && !strings.ContainsAny(h.Raw, ".eE") {
		n := int(h.Int())
		fm.Height = &n
	}
	if size := f.Get("filesize"); size.Type == gjson.Number {
		fm.Size = size.Int()
	} else if approx := f.Get("filesize_approx"); approx.Type == gjson.Number {
		fm.Size = approx.Int()
	}
	return fm
}

func optString(r gjson.Result) *string {
	if r.Type != gjson.String {
		return nil
	}
	s := r.String()
	return &s
}

func lastDocument(data []byte) (gjson.Result, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return gjson.Result{}, false
	}
	if gjson.ValidBytes(data) {
		doc := gjson.ParseBytes(data)
		return doc, doc.IsObject()
	}
	lines := strings.Split(string(data), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || !gjson.Valid(line) {
			continue
		}
		if doc := gjson.Parse(line); doc.IsObject() && doc.Get("id").Exists() {
			return doc, true
		}
	}
	return gjson.Result{}, false
}
