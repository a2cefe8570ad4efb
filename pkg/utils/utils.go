package utils

import (
	"fmt"
	"time"
)

// Duration formats a duration with a unit suited to its size.
func Duration(duration time.Duration) string {
	switch {
	case duration < time.Millisecond:
		return fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		return fmt.Sprintf("%dms", duration.Milliseconds())
	default:
		return fmt.Sprintf("%.3fs", duration.Seconds())
	}
}
