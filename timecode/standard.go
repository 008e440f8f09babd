package timecode

import (
	"regexp"
	"strings"
)

// Standard is a fully-resolved timecode standard: the exact frame
// rate as a rational number plus the drop-frame parameters. The rate
// is Frames/PerWallSecs and is never stored as a float.
type Standard struct {
	Frames      int // frames per PerWallSecs wall seconds
	PerWallSecs int // 1, or 1001 for the NTSC-derived rates
	IntFPS      int // frame numbers per timecode second, ceil(Frames/PerWallSecs)
	DropPer10   int // frame numbers skipped per 10 timecode minutes, 0 for non-drop
}

// Drop reports whether s uses drop-frame counting.
func (s Standard) Drop() bool { return s.DropPer10 > 0 }

// dropBlock is the number of frame numbers skipped at the start of
// each minute not divisible by 10. There are 9 such minutes per
// 10-minute span, so DropPer10 is always divisible by 9.
func (s Standard) dropBlock() int { return s.DropPer10 / 9 }

type rate struct {
	frames      int
	perWallSecs int
	dropPer10   int // 0 when the rate has no drop-frame form
}

// Both the 2- and 3-digit decimal spellings of the NTSC-derived rates
// are accepted; they resolve to the same standard.
var rates = map[string]rate{
	"23.976": {24000, 1001, 0},
	"23.98":  {24000, 1001, 0},
	"24.000": {24, 1, 0},
	"24.00":  {24, 1, 0},
	"25.000": {25, 1, 0},
	"25.00":  {25, 1, 0},
	"29.970": {30000, 1001, 18},
	"29.97":  {30000, 1001, 18},
	"30.000": {30, 1, 0},
	"30.00":  {30, 1, 0},
	"47.952": {48000, 1001, 0},
	"47.95":  {48000, 1001, 0},
	"48.000": {48, 1, 0},
	"48.00":  {48, 1, 0},
	"50.000": {50, 1, 0},
	"50.00":  {50, 1, 0},
	"59.940": {60000, 1001, 36},
	"59.94":  {60000, 1001, 36},
	"60.000": {60, 1, 0},
	"60.00":  {60, 1, 0},
}

var rateLabelShape = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2,3}$`)

// ResolveStandard combines a frame-rate label like "29.97" with a
// drop flag ("drop" or "non-drop", case-insensitive) into a Standard.
// Requesting "drop" for a rate with no drop-frame form is an error.
func ResolveStandard(rateLabel, dropFlag string) (Standard, error) {
	label := strings.TrimSpace(rateLabel)
	if !rateLabelShape.MatchString(label) {
		return Standard{}, invalidf("frame rate %q is not a DD.DD or DD.DDD label", rateLabel)
	}
	r, ok := rates[label]
	if !ok {
		return Standard{}, invalidf("frame rate %q is not supported", rateLabel)
	}
	std := Standard{
		Frames:      r.frames,
		PerWallSecs: r.perWallSecs,
		IntFPS:      (r.frames + r.perWallSecs - 1) / r.perWallSecs,
	}
	switch strings.ToLower(strings.TrimSpace(dropFlag)) {
	case "non-drop":
	case "drop":
		if r.dropPer10 == 0 {
			return Standard{}, invalidf("frame rate %q has no drop-frame form", rateLabel)
		}
		std.DropPer10 = r.dropPer10
	default:
		return Standard{}, invalidf(`drop flag %q: want "drop" or "non-drop"`, dropFlag)
	}
	return std, nil
}
