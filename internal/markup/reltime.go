package markup

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// RelativeTime renders an age the way the timeline shows it, e.g. "3 mins ago".
// Each bound is inclusive.
func RelativeTime(d time.Duration) string {
	switch {
	case d < time.Second:
		return "just now"
	case d <= time.Minute:
		return fmt.Sprintf("%d secs ago", int(d/time.Second))
	case d <= 2*time.Minute:
		return fmt.Sprintf("%d min ago", int(d/time.Minute))
	case d <= time.Hour:
		return fmt.Sprintf("%d mins ago", int(d/time.Minute))
	case d <= 2*time.Hour:
		return fmt.Sprintf("%d hour ago", int(d/time.Hour))
	case d <= day:
		return fmt.Sprintf("%d hours ago", int(d/time.Hour))
	case d <= 2*day:
		return fmt.Sprintf("%d day ago", int(d/day))
	default:
		return fmt.Sprintf("%d days ago", int(d/day))
	}
}
