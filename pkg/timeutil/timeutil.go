// Package timeutil provides duration formatting helpers for log output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration the way the debug npm package does:
// sub-second durations in milliseconds, then seconds, minutes, hours.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.1fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
