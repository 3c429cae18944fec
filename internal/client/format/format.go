// Package format renders dates, durations and counters for the terminal
// screens.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Now is the label for anything less than a minute old.
const Now = "now"

// Relative renders t relative to now: "now" under a minute, otherwise a
// humanized distance such as "3 hours ago".
func Relative(t, now time.Time) string {
	if now.Sub(t) < time.Minute {
		return Now
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Duration renders the span between start and end, see Span.
func Duration(start, end time.Time) string {
	return Span(end.Sub(start))
}

// Span renders d with minutes rounded up: "45 min", "2 h", "1 h 30 min",
// and "1 d 3 h" from a day on. Zero or negative spans render empty.
func Span(d time.Duration) string {
	mins := int64(math.Ceil(d.Minutes()))
	if mins <= 0 {
		return ""
	}

	switch {
	case mins < 60:
		return fmt.Sprintf("%d min", mins)
	case mins < 24*60:
		h, m := mins/60, mins%60
		if m == 0 {
			return fmt.Sprintf("%d h", h)
		}
		return fmt.Sprintf("%d h %d min", h, m)
	default:
		days, h := mins/(24*60), (mins%(24*60))/60
		if h == 0 {
			return fmt.Sprintf("%d d", days)
		}
		return fmt.Sprintf("%d d %d h", days, h)
	}
}

// Seconds renders a duration given in whole seconds, as used by the ranking.
func Seconds(sec int64) string {
	return Span(time.Duration(sec) * time.Second)
}

// Clock renders t as HH:MM.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Points renders a points counter with thousands separators.
func Points(n int) string {
	return humanize.Comma(int64(n))
}
