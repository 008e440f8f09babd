package timecode

import (
	"math"
	"testing"

	"github.com/cbsinteractive/timecode-api/test"
)

func TestDurationString(t *testing.T) {
	tests := []struct {
		name    string
		secs    float64
		want    string
		wantErr string
	}{
		{name: "HoursMinutesSeconds", secs: 3765, want: "1h 02m 45s"},
		{name: "MinutesSeconds", secs: 125, want: "2m 05s"},
		{name: "SecondsOnly", secs: 45, want: "45s"},
		{name: "SmallSeconds", secs: 7, want: "07s"},
		{name: "Zero", secs: 0, want: "00s"},
		{name: "RoundsHalfUp", secs: 59.5, want: "1m 00s"},
		{name: "RoundsDown", secs: 59.4, want: "59s"},
		{name: "ExactHour", secs: 3600, want: "1h 00m 00s"},
		{name: "ManyHours", secs: 100*3600 + 62, want: "100h 01m 02s"},
		{name: "Negative", secs: -3765, want: "(-) 1h 02m 45s"},
		{name: "NegativeRoundingToZero", secs: -0.4, want: "00s"},
		{name: "NegativeHalf", secs: -0.5, want: "(-) 01s"},
		{
			name: "NaN",
			secs: math.NaN(),
			wantErr: `invalid input: seconds value NaN is not finite`,
		},
		{
			name: "Inf",
			secs: math.Inf(1),
			wantErr: `invalid input: seconds value +Inf is not finite`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DurationString(tt.secs)
			if test.AssertWantErr(err, tt.wantErr, "DurationString()", t) {
				return
			}
			if got != tt.want {
				t.Errorf("DurationString(%v) = %q, want %q", tt.secs, got, tt.want)
			}
		})
	}
}
