package timecode

// The functions in this file are the operation surface consumed by
// host adapters (the HTTP service, the CLI). They take and return
// only primitive values; raw timecode arguments pass through
// ParseInput so hosts can hand over either the text or the packed
// integer form.

func resolveInput(raw interface{}, rateLabel, dropFlag string) (Timecode, Standard, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return Timecode{}, Standard{}, err
	}
	tc, err := ParseInput(raw)
	if err != nil {
		return Timecode{}, Standard{}, err
	}
	if err := tc.Validate(std); err != nil {
		return Timecode{}, Standard{}, err
	}
	return tc, std, nil
}

// Check reports why the timecode is invalid under the named standard,
// or "" when it is valid. Unlike every other operation it never
// returns an error.
func Check(raw interface{}, rateLabel, dropFlag string) string {
	if _, _, err := resolveInput(raw, rateLabel, dropFlag); err != nil {
		return err.Error()
	}
	return ""
}

// ToFrame converts a raw timecode to its frame index.
func ToFrame(raw interface{}, rateLabel, dropFlag string) (int, error) {
	tc, std, err := resolveInput(raw, rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	return tc.Frame(std), nil
}

// ToTimecode converts a frame index to formatted timecode text.
func ToTimecode(frame int, rateLabel, dropFlag string) (string, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return "", err
	}
	tc, err := FromFrame(frame, std)
	if err != nil {
		return "", err
	}
	return tc.String(), nil
}

// FrameToWallSecs converts a frame index to elapsed wall seconds.
func FrameToWallSecs(frame int, rateLabel, dropFlag string) (float64, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	return WallSeconds(frame, std)
}

// ToWallSecs converts a raw timecode to elapsed wall seconds.
func ToWallSecs(raw interface{}, rateLabel, dropFlag string) (float64, error) {
	tc, std, err := resolveInput(raw, rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	return WallSeconds(tc.Frame(std), std)
}

// WallSecsBetween returns the signed wall seconds from the start
// timecode to the end timecode.
func WallSecsBetween(start, end interface{}, rateLabel, dropFlag string) (float64, error) {
	from, std, err := resolveInput(start, rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	to, err := ParseInput(end)
	if err != nil {
		return 0, err
	}
	if err := to.Validate(std); err != nil {
		return 0, err
	}
	return Between(from, to, std), nil
}

// WallSecsToFrameLeft returns the frame index at or before the wall
// time secs; WallSecsToFrameRight the one at or after. Negative
// results are permitted.
func WallSecsToFrameLeft(secs float64, rateLabel, dropFlag string) (int, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	return FrameLeft(secs, std)
}

func WallSecsToFrameRight(secs float64, rateLabel, dropFlag string) (int, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return 0, err
	}
	return FrameRight(secs, std)
}

// WallSecsToTimecodeLeft and WallSecsToTimecodeRight are the
// boundary queries rendered as timecode text, so secs must not land
// before the zero origin.
func WallSecsToTimecodeLeft(secs float64, rateLabel, dropFlag string) (string, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return "", err
	}
	tc, err := TimecodeLeft(secs, std)
	if err != nil {
		return "", err
	}
	return tc.String(), nil
}

func WallSecsToTimecodeRight(secs float64, rateLabel, dropFlag string) (string, error) {
	std, err := ResolveStandard(rateLabel, dropFlag)
	if err != nil {
		return "", err
	}
	tc, err := TimecodeRight(secs, std)
	if err != nil {
		return "", err
	}
	return tc.String(), nil
}
