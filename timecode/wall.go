package timecode

import "math"

// WallSeconds returns the true elapsed seconds at frame index n.
// The multiply happens before the divide so the only rounding is the
// final one.
func WallSeconds(n int, std Standard) (float64, error) {
	if n < 0 {
		return 0, invalidf("frame index %d is negative", n)
	}
	return float64(n) * float64(std.PerWallSecs) / float64(std.Frames), nil
}

// Between returns the signed wall-clock seconds from start to end,
// negative when end precedes start.
func Between(start, end Timecode, std Standard) float64 {
	d := end.Frame(std) - start.Frame(std)
	return float64(d) * float64(std.PerWallSecs) / float64(std.Frames)
}

func fractionalFrame(secs float64, std Standard) (float64, error) {
	if math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, invalidf("seconds value %v is not finite", secs)
	}
	return secs * float64(std.Frames) / float64(std.PerWallSecs), nil
}

// FrameLeft returns the nearest frame index at or before the wall
// time secs. The result is negative when secs falls before the zero
// origin.
func FrameLeft(secs float64, std Standard) (int, error) {
	f, err := fractionalFrame(secs, std)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(f)), nil
}

// FrameRight returns the nearest frame index at or after the wall
// time secs.
func FrameRight(secs float64, std Standard) (int, error) {
	f, err := fractionalFrame(secs, std)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(f)), nil
}

// TimecodeLeft is FrameLeft rendered as a timecode, so secs must not
// precede the zero origin.
func TimecodeLeft(secs float64, std Standard) (Timecode, error) {
	n, err := FrameLeft(secs, std)
	if err != nil {
		return Timecode{}, err
	}
	return FromFrame(n, std)
}

// TimecodeRight is FrameRight rendered as a timecode.
func TimecodeRight(secs float64, std Standard) (Timecode, error) {
	n, err := FrameRight(secs, std)
	if err != nil {
		return Timecode{}, err
	}
	return FromFrame(n, std)
}
