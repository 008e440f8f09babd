package timecode

// Frame returns the linear frame index of tc: the count of frame
// numbers that exist under std between 00:00:00:00 and tc. Under a
// drop standard the skipped numbers are excluded, so the index space
// stays dense. tc is assumed to have passed Validate.
func (tc Timecode) Frame(std Standard) int {
	secs := tc.HH*3600 + tc.MM*60 + tc.SS
	n := std.IntFPS*secs + tc.FF
	if std.Drop() {
		// 6 ten-minute spans per hour, one complete span per 10
		// minutes, one dropped block per minute since the last
		// multiple of 10 (including the current minute's own drop,
		// which is behind any valid tc).
		n -= tc.HH * 6 * std.DropPer10
		n -= tc.MM / 10 * std.DropPer10
		n -= tc.MM % 10 * std.dropBlock()
	}
	return n
}

// FromFrame returns the timecode at frame index n under std,
// restoring the frame numbers dropped before that position. Negative
// indices have no timecode.
func FromFrame(n int, std Standard) (Timecode, error) {
	if n < 0 {
		return Timecode{}, invalidf("frame index %d is negative", n)
	}
	if std.Drop() {
		perMin := std.IntFPS * 60
		per10 := 10*perMin - std.DropPer10
		spans, rem := n/per10, n%per10
		n += spans * std.DropPer10
		// Within the partial span the first minute keeps every frame;
		// each later minute starts by dropping a block and so runs
		// dropBlock short.
		if rem >= perMin {
			n += (1 + (rem-perMin)/(perMin-std.dropBlock())) * std.dropBlock()
		}
	}
	perHr, perMin := std.IntFPS*3600, std.IntFPS*60
	return Timecode{
		HH: n / perHr,
		MM: n % perHr / perMin,
		SS: n % perMin / std.IntFPS,
		FF: n % std.IntFPS,
	}, nil
}
