package progress

import "time"

// Status mirrors the states yt-dlp reports for a download.
type Status string

const (
	StatusProbing     Status = "probing"
	StatusDownloading Status = "downloading"
	StatusFinished    Status = "finished"
	StatusError       Status = "error"
)

// LogStream indicates which stream produced a log line.
type LogStream int

const (
	StreamStdout LogStream = iota
	StreamStderr
)

// Update conveys download progress for a job.
// Percent is 0..100 when known; set to a negative value (e.g., -1) to mean unknown.
type Update struct {
	JobID   string
	Status  Status
	Percent float64 // 0..100, or <0 if unknown

	DownloadedBytes int64
	TotalBytes      int64          // 0 if unknown
	ETA             *time.Duration // optional
	Speed           string         // e.g. "2.50MiB/s"; empty if unknown
	Filename        string         // file currently being written, when known
	Message         string         // short human-friendly status line
}

// ComputePercent fills Percent from the byte counters; 0 when the total is unknown.
func (u *Update) ComputePercent() {
	if u.TotalBytes > 0 {
		u.Percent = float64(u.DownloadedBytes) / float64(u.TotalBytes) * 100
		return
	}
	u.Percent = 0
}

// Log is a structured log line associated with a job.
type Log struct {
	JobID  string
	Stream LogStream
	Line   string
}

// Result is emitted once per job when it completes or fails.
type Result struct {
	JobID string
	OK    bool
	Err   error // nil on success
}

// Reporter is implemented by UI or any observer interested in progress events.
type Reporter interface {
	Update(u Update)
	Log(l Log)
	Result(r Result)
}
