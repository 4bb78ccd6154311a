// Package format renders byte counts and transfer rates the way the
// progress lines and the formats table print them.
package format

import "strconv"

var units = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// HumanizeBytes renders b with binary units, e.g. 1536 -> "1.5 KB".
// Values below 1 KB are printed as whole bytes.
func HumanizeBytes(b int64) string {
	if b < 1024 {
		return strconv.FormatInt(b, 10) + " B"
	}
	v := float64(b)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " " + units[i]
}

// HumanizeSpeed renders a yt-dlp speed in bytes per second, e.g.
// "2.5 MB/s". It returns "" when the speed is unknown or not positive.
func HumanizeSpeed(bytesPerSec float64) string {
	if bytesPerSec <= 0 {
		return ""
	}
	return HumanizeBytes(int64(bytesPerSec)) + "/s"
}
