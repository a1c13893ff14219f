package format

import (
	"fmt"
	"time"
)

// Uptime renders a duration as a compact human-readable uptime string,
// e.g. "3d 4h 12m" or "58m". Zero and negative durations render as "unknown".
func Uptime(d time.Duration) string {
	if d <= 0 {
		return "unknown"
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
