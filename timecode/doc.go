// Package timecode converts between the three interchangeable
// representations of a position on a video timeline:
//
// 	a formatted timecode   "HH:MM:SS:FF"
// 	a linear frame index   0, 1, 2, ...
// 	wall-clock seconds     elapsed real time from the same origin
//
// The package covers the usual broadcast frame rates, including the
// NTSC-derived fractional rates (23.976, 29.97, 47.952, 59.94) whose
// exact value is an integer count of frames per 1001/1000 seconds.
// For 29.97 and 59.94 the SMPTE drop-frame convention is supported:
// certain frame numbers are skipped at the start of most minutes so
// that timecode stays in step with real elapsed time. The frame index
// space is always dense; dropped frame numbers simply do not exist
// in it.
//
// Everything here is a pure function of its arguments. Invalid input
// of any kind is reported as an error wrapping ErrInvalidInput.
package timecode
