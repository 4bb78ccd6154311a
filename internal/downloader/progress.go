package downloader

import (
	"strconv"
	"strings"
	"time"

	"ytpick/internal/progress"
	"ytpick/internal/util/format"
)

const (
	templatePrefix = "[ytpick:progress]"
	filePrefix     = "[ytpick:file] "

	// progressTemplate makes yt-dlp print one machine-readable line per progress
	// hook call. Missing values are printed as NA.
	progressTemplate = templatePrefix +
		"|%(progress.status)s" +
		"|%(progress.downloaded_bytes)s" +
		"|%(progress.total_bytes)s" +
		"|%(progress.total_bytes_estimate)s" +
		"|%(progress.speed)s" +
		"|%(progress.eta)s" +
		"|%(progress.filename)s"
)

// ParseTemplateLine parses a line produced by progressTemplate.
func ParseTemplateLine(line, jobID string) (progress.Update, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, templatePrefix) {
		return progress.Update{}, false
	}
	fields := strings.SplitN(strings.TrimPrefix(line, templatePrefix+"|"), "|", 7)
	if len(fields) < 6 {
		return progress.Update{}, false
	}

	u := progress.Update{JobID: jobID}
	switch fields[0] {
	case "downloading":
		u.Status = progress.StatusDownloading
	case "finished":
		u.Status = progress.StatusFinished
	case "error":
		u.Status = progress.StatusError
	default:
		return progress.Update{}, false
	}

	u.DownloadedBytes = parseInt(fields[1])
	u.TotalBytes = parseInt(fields[2])
	if u.TotalBytes == 0 {
		u.TotalBytes = parseInt(fields[3])
	}
	if speed, err := strconv.ParseFloat(fields[4], 64); err == nil {
		u.Speed = format.HumanizeSpeed(speed)
	}
	if eta, err := strconv.ParseFloat(fields[5], 64); err == nil && eta >= 0 {
		d := time.Duration(eta) * time.Second
		u.ETA = &d
	}
	if len(fields) == 7 && fields[6] != "NA" {
		u.Filename = fields[6]
	}

	switch u.Status {
	case progress.StatusDownloading:
		u.ComputePercent()
		u.Message = DownloadingMessage(u)
	case progress.StatusFinished:
		u.Percent = 100
		u.Message = "Download completed."
	case progress.StatusError:
		u.Percent = -1
		u.Message = "Download error."
	}
	return u, true
}

// DownloadingMessage renders "Downloading: 12.3% at 1.5 MB/s ETA 42s".
func DownloadingMessage(u progress.Update) string {
	speed := u.Speed
	if speed == "" {
		speed = "N/A"
	}
	var b strings.Builder
	b.WriteString("Downloading: ")
	b.WriteString(strconv.FormatFloat(u.Percent, 'f', 1, 64))
	b.WriteString("% at ")
	b.WriteString(speed)
	if u.ETA != nil && *u.ETA > 0 {
		b.WriteString(" ETA ")
		b.WriteString(strconv.Itoa(int(u.ETA.Seconds())))
		b.WriteString("s")
	}
	return b.String()
}

func parseFileLine(line string) (string, bool) {
	if !strings.HasPrefix(line, filePrefix) {
		return "", false
	}
	path := strings.TrimSpace(strings.TrimPrefix(line, filePrefix))
	return path, path != ""
}

func parseInt(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// total_bytes_estimate is a float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// ParseProgress parses the human-readable progress lines printed by
// youtube-dl and by yt-dlp without a progress template.
func ParseProgress(line, jobID string) (u progress.Update, ok bool) {
	// e.g. [download]  45.2% of 10.00MiB at  1.50MiB/s ETA 00:04
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[download]") {
		return progress.Update{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(line, "[download]"))

	var percent float64 = -1
	if idx := strings.Index(rest, "%"); idx != -1 {
		if p, err := strconv.ParseFloat(strings.TrimSpace(rest[:idx]), 64); err == nil {
			percent = p
		}
	}
	if percent < 0 {
		// Destination:, "has already been downloaded" and similar notices.
		return progress.Update{}, false
	}

	var speed string
	if idx := strings.Index(rest, " at "); idx != -1 {
		speedPart := strings.TrimSpace(rest[idx+4:])
		if idx2 := strings.Index(speedPart, " "); idx2 != -1 {
			speed = speedPart[:idx2]
		} else {
			speed = speedPart
		}
	}

	var eta *time.Duration
	if idx := strings.Index(rest, "ETA "); idx != -1 {
		etaStr := strings.TrimSpace(rest[idx+4:])
		if idx2 := strings.Index(etaStr, " "); idx2 != -1 {
			etaStr = etaStr[:idx2]
		}
		if d, err := parseETA(etaStr); err == nil {
			eta = &d
		}
	}

	u = progress.Update{
		JobID:   jobID,
		Status:  progress.StatusDownloading,
		Percent: percent,
		Speed:   speed,
		ETA:     eta,
	}
	if percent >= 100 && strings.Contains(rest, " in ") {
		u.Status = progress.StatusFinished
		u.Message = "Download completed."
		return u, true
	}
	u.Message = DownloadingMessage(u)
	return u, true
}

// parseETA parses duration strings like "00:04", "01:23:45", etc.
func parseETA(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, err
		}
		sec, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, err
		}
		return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	case 3:
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, err
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, err
		}
		sec, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, err
		}
		return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
	default:
		sec, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		return time.Duration(sec) * time.Second, nil
	}
}
