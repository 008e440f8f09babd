package timecode

import (
	"math"
	"testing"

	"github.com/cbsinteractive/timecode-api/test"
)

func TestWallSeconds(t *testing.T) {
	tests := []struct {
		name    string
		frame   int
		rate    string
		drop    string
		want    float64
		wantErr string
	}{
		{name: "Origin", frame: 0, rate: "25.00", drop: "non-drop", want: 0},
		{name: "PAL50", frame: 52, rate: "50.00", drop: "non-drop", want: 1.04},
		{name: "OneSecondOfFilm", frame: 24, rate: "23.976", drop: "non-drop", want: 1.001},
		{name: "NTSCDropHour", frame: 107892, rate: "29.97", drop: "drop", want: 107892 * 1001.0 / 30000},
		{
			name:  "NegativeFrame",
			frame: -3, rate: "25.00", drop: "non-drop",
			wantErr: `invalid input: frame index -3 is negative`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std, err := ResolveStandard(tt.rate, tt.drop)
			if err != nil {
				t.Fatalf("ResolveStandard() error = %v", err)
			}
			got, err := WallSeconds(tt.frame, std)
			if test.AssertWantErr(err, tt.wantErr, "WallSeconds()", t) {
				return
			}
			if got != tt.want {
				t.Errorf("WallSeconds(%d) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestWallSecondsMonotonic(t *testing.T) {
	std, err := ResolveStandard("29.97", "drop")
	if err != nil {
		t.Fatal(err)
	}
	prev := -1.0
	for i := 0; i < 20000; i++ {
		secs, err := WallSeconds(i, std)
		if err != nil {
			t.Fatalf("WallSeconds(%d) error = %v", i, err)
		}
		if secs <= prev {
			t.Fatalf("WallSeconds(%d) = %v, not above WallSeconds(%d) = %v", i, secs, i-1, prev)
		}
		prev = secs
	}
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		rate       string
		drop       string
		want       float64
		tolerance  float64
	}{
		{
			name:  "Forward",
			start: "00:00:01:03", end: "00:02:05:11",
			rate: "24.00", drop: "non-drop",
			want: 124.3333333, tolerance: 1e-6,
		},
		{
			name:  "BackwardIsNegative",
			start: "00:02:05:11", end: "00:00:01:03",
			rate: "24.00", drop: "non-drop",
			want: -124.3333333, tolerance: 1e-6,
		},
		{
			name:  "SamePoint",
			start: "01:02:03:04", end: "01:02:03:04",
			rate: "29.97", drop: "drop",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std, err := ResolveStandard(tt.rate, tt.drop)
			if err != nil {
				t.Fatalf("ResolveStandard() error = %v", err)
			}
			start, err := Parse(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			end, err := Parse(tt.end)
			if err != nil {
				t.Fatal(err)
			}
			got := Between(start, end, std)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Between(%s, %s) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFrameBoundaries(t *testing.T) {
	tests := []struct {
		name                string
		secs                float64
		rate                string
		drop                string
		wantLeft, wantRight int
	}{
		{name: "BetweenFrames", secs: 1.041, rate: "50.00", drop: "non-drop", wantLeft: 52, wantRight: 53},
		{name: "OnAFrame", secs: 1.5, rate: "50.00", drop: "non-drop", wantLeft: 75, wantRight: 75},
		{name: "Origin", secs: 0, rate: "24.00", drop: "non-drop", wantLeft: 0, wantRight: 0},
		{name: "Negative", secs: -0.1, rate: "25.00", drop: "non-drop", wantLeft: -3, wantRight: -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std, err := ResolveStandard(tt.rate, tt.drop)
			if err != nil {
				t.Fatalf("ResolveStandard() error = %v", err)
			}
			left, err := FrameLeft(tt.secs, std)
			if err != nil {
				t.Fatalf("FrameLeft() error = %v", err)
			}
			right, err := FrameRight(tt.secs, std)
			if err != nil {
				t.Fatalf("FrameRight() error = %v", err)
			}
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("boundaries(%v) = %d, %d, want %d, %d", tt.secs, left, right, tt.wantLeft, tt.wantRight)
			}
			if d := right - left; d != 0 && d != 1 {
				t.Errorf("right - left = %d, want 0 or 1", d)
			}
		})
	}
}

func TestBoundaryConsistency(t *testing.T) {
	std, err := ResolveStandard("29.97", "drop")
	if err != nil {
		t.Fatal(err)
	}
	for _, secs := range []float64{-7.3, -0.001, 0, 0.016, 1, 59.94, 3599.9, 86400.5} {
		frac, err := fractionalFrame(secs, std)
		if err != nil {
			t.Fatal(err)
		}
		left, _ := FrameLeft(secs, std)
		right, _ := FrameRight(secs, std)
		if float64(left) > frac || frac > float64(right) {
			t.Errorf("secs %v: left %d, fractional %v, right %d out of order", secs, left, frac, right)
		}
		if d := right - left; d != 0 && d != 1 {
			t.Errorf("secs %v: right - left = %d", secs, d)
		}
	}
}

func TestTimecodeBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		secs    float64
		rate    string
		drop    string
		right   bool
		want    string
		wantErr string
	}{
		{name: "Left", secs: 1.041, rate: "50.00", drop: "non-drop", want: "00:00:01:02"},
		{name: "Right", secs: 1.041, rate: "50.00", drop: "non-drop", right: true, want: "00:00:01:03"},
		{name: "RightOfNegativeFraction", secs: -0.01, rate: "25.00", drop: "non-drop", right: true, want: "00:00:00:00"},
		{
			name: "LeftOfOrigin",
			secs: -0.01, rate: "25.00", drop: "non-drop",
			wantErr: `invalid input: frame index -1 is negative`,
		},
		{
			name: "NotFinite",
			secs: math.NaN(), rate: "25.00", drop: "non-drop",
			wantErr: `invalid input: seconds value NaN is not finite`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			std, err := ResolveStandard(tt.rate, tt.drop)
			if err != nil {
				t.Fatalf("ResolveStandard() error = %v", err)
			}
			var tc Timecode
			if tt.right {
				tc, err = TimecodeRight(tt.secs, std)
			} else {
				tc, err = TimecodeLeft(tt.secs, std)
			}
			if test.AssertWantErr(err, tt.wantErr, "TimecodeLeft/Right()", t) {
				return
			}
			if got := tc.String(); got != tt.want {
				t.Errorf("boundary timecode(%v) = %s, want %s", tt.secs, got, tt.want)
			}
		})
	}
}
