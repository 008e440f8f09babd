package timecode

import (
	"fmt"
	"math"
)

// DurationString renders a wall-seconds value as a compact duration
// like "1h 02m 45s", rounded to the nearest whole second. The hours
// segment is omitted when zero, the minutes segment when hours and
// minutes are both zero. Negative durations are prefixed "(-) ".
func DurationString(secs float64) (string, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return "", invalidf("seconds value %v is not finite", secs)
	}
	neg := secs < 0
	if neg {
		secs = -secs
	}
	s := int(math.Floor(secs + 0.5))
	hh, mm, ss := s/3600, s/60%60, s%60

	var out string
	switch {
	case hh > 0:
		out = fmt.Sprintf("%dh %02dm %02ds", hh, mm, ss)
	case mm > 0:
		out = fmt.Sprintf("%dm %02ds", mm, ss)
	default:
		out = fmt.Sprintf("%02ds", ss)
	}
	if neg && s != 0 {
		out = "(-) " + out
	}
	return out, nil
}
