package utils

import "fmt"

const notSpecified = "not specified"

// FormatFilesize renders a byte count as a human readable size with one
// decimal place. Unknown sizes (zero or negative) render as "not specified".
func FormatFilesize(size int64) string {
	if size <= 0 {
		return notSpecified
	}

	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}

// FormatDuration renders a duration in seconds as HH:MM:SS, or MM:SS when
// under an hour. Unknown durations render as "not specified".
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return notSpecified
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
