package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Timecode is a parsed HH:MM:SS:FF value. It has no inherent
// validity of its own: field ranges depend on the standard it is
// read under, so callers pass it through Validate before converting.
type Timecode struct {
	HH, MM, SS, FF int

	// a semicolon separator appeared in the source text
	dropSep bool
}

func (tc Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", tc.HH, tc.MM, tc.SS, tc.FF)
}

var timecodeShape = regexp.MustCompile(`^([0-9]{2})[:;]([0-9]{2})[:;]([0-9]{2})[:;]([0-9]{2})$`)

// Parse reads a timecode from text. Each separator is independently a
// colon or a semicolon; semicolons are remembered so Validate can
// reject them under non-drop standards.
func Parse(raw string) (Timecode, error) {
	s := strings.TrimSpace(raw)
	m := timecodeShape.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, invalidf("timecode %q is not in HH:MM:SS:FF form", raw)
	}
	atoi := func(s string) int { n, _ := strconv.Atoi(s); return n }
	return Timecode{
		HH:      atoi(m[1]),
		MM:      atoi(m[2]),
		SS:      atoi(m[3]),
		FF:      atoi(m[4]),
		dropSep: strings.ContainsRune(s, ';'),
	}, nil
}

const maxPacked = 99999999

// ParsePacked reads a timecode from an integer of up to 8 decimal
// digits packed as HHMMSSFF, a legacy spreadsheet entry form where
// 4332211 means 04:33:22:11.
func ParsePacked(n int) (Timecode, error) {
	if n < 0 || n > maxPacked {
		return Timecode{}, invalidf("packed timecode %d out of range [0, %d]", n, maxPacked)
	}
	return Timecode{
		HH: n / 1000000,
		MM: n / 10000 % 100,
		SS: n / 100 % 100,
		FF: n % 100,
	}, nil
}

// ParseInput accepts the raw timecode forms a host hands over: text,
// or a whole number packed as HHMMSSFF. Function-invocation runtimes
// deliver numbers as float64, so integral floats are accepted too.
// Every other dynamic type is an error.
func ParseInput(raw interface{}) (Timecode, error) {
	switch v := raw.(type) {
	case string:
		return Parse(v)
	case int:
		return ParsePacked(v)
	case int64:
		if v < 0 || v > maxPacked {
			return Timecode{}, invalidf("packed timecode %d out of range [0, %d]", v, maxPacked)
		}
		return ParsePacked(int(v))
	case float64:
		if v != math.Trunc(v) {
			return Timecode{}, invalidf("timecode number %v is not a whole number", v)
		}
		if v < 0 || v > maxPacked {
			return Timecode{}, invalidf("packed timecode %v out of range [0, %d]", v, maxPacked)
		}
		return ParsePacked(int(v))
	default:
		return Timecode{}, invalidf("timecode must be text or a number, not %T", raw)
	}
}

// Validate checks tc against std. MM and SS must fit a minute, FF
// must fit the standard's integer rate, drop standards must not name
// a skipped frame number, and semicolon separators are only legal
// under drop standards. HH is deliberately unchecked beyond its
// two-digit parse.
func (tc Timecode) Validate(std Standard) error {
	if tc.MM < 0 || tc.MM > 59 {
		return invalidf("minutes %02d out of range [00, 59]", tc.MM)
	}
	if tc.SS < 0 || tc.SS > 59 {
		return invalidf("seconds %02d out of range [00, 59]", tc.SS)
	}
	if tc.FF < 0 || tc.FF >= std.IntFPS {
		return invalidf("frames %02d out of range [00, %02d]", tc.FF, std.IntFPS-1)
	}
	if std.Drop() {
		if tc.SS == 0 && tc.MM%10 != 0 && tc.FF < std.dropBlock() {
			return invalidf("timecode %s names a dropped frame and does not exist", tc)
		}
	} else if tc.dropSep {
		return invalidf("semicolon separators are reserved for drop-frame timecode")
	}
	return nil
}
