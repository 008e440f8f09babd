// Package timecoding is a client for the timecode API. Each method
// maps to one conversion operation and returns the primitive result.
package timecoding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client holds timecode-api configuration and exposes methods for
// interacting with the conversion service
type Client interface {
	// Check reports why a timecode is invalid under a standard, or
	// "" when it is valid
	Check(ctx context.Context, tc, rate, drop string) (string, error)

	// Timecode conversions
	TimecodeToFrame(ctx context.Context, tc, rate, drop string) (int, error)
	TimecodeToSeconds(ctx context.Context, tc, rate, drop string) (float64, error)
	SecondsBetween(ctx context.Context, start, end, rate, drop string) (float64, error)

	// Frame index conversions
	FrameToTimecode(ctx context.Context, frame int, rate, drop string) (string, error)
	FrameToSeconds(ctx context.Context, frame int, rate, drop string) (float64, error)

	// Wall-clock conversions
	Duration(ctx context.Context, secs float64) (string, error)
	SecondsToFrame(ctx context.Context, secs float64, rate, drop, round string) (int, error)
	SecondsToTimecode(ctx context.Context, secs float64, rate, drop, round string) (string, error)
}

const (
	defaultTimeout = 30 * time.Second
	defaultBaseURL = "http://localhost:8080/v1"
)

type DefaultClient struct {
	Base   *url.URL
	Client *http.Client
}

type checkResponse struct {
	Error string `json:"error"`
}

type frameResponse struct {
	Frame int `json:"frame"`
}

type timecodeResponse struct {
	Timecode string `json:"timecode"`
}

type secondsResponse struct {
	Seconds float64 `json:"seconds"`
}

type durationResponse struct {
	Duration string `json:"duration"`
}

func standardArgs(tc, rate, drop string) url.Values {
	v := url.Values{}
	if tc != "" {
		v.Set("tc", tc)
	}
	v.Set("rate", rate)
	v.Set("drop", drop)
	return v
}

// Check reports the validity of a timecode under a standard
func (c *DefaultClient) Check(ctx context.Context, tc, rate, drop string) (string, error) {
	c.ensure()

	var resp checkResponse
	err := c.getResource(ctx, &resp, "/timecodes/check", standardArgs(tc, rate, drop))
	if err != nil {
		return "", err
	}
	return resp.Error, nil
}

// TimecodeToFrame returns the linear frame index of a timecode
func (c *DefaultClient) TimecodeToFrame(ctx context.Context, tc, rate, drop string) (int, error) {
	c.ensure()

	var resp frameResponse
	err := c.getResource(ctx, &resp, "/timecodes/frame", standardArgs(tc, rate, drop))
	if err != nil {
		return 0, err
	}
	return resp.Frame, nil
}

// TimecodeToSeconds returns the elapsed wall seconds at a timecode
func (c *DefaultClient) TimecodeToSeconds(ctx context.Context, tc, rate, drop string) (float64, error) {
	c.ensure()

	var resp secondsResponse
	err := c.getResource(ctx, &resp, "/timecodes/seconds", standardArgs(tc, rate, drop))
	if err != nil {
		return 0, err
	}
	return resp.Seconds, nil
}

// SecondsBetween returns the signed wall seconds from start to end
func (c *DefaultClient) SecondsBetween(ctx context.Context, start, end, rate, drop string) (float64, error) {
	c.ensure()

	v := standardArgs("", rate, drop)
	v.Set("start", start)
	v.Set("end", end)

	var resp secondsResponse
	err := c.getResource(ctx, &resp, "/timecodes/between", v)
	if err != nil {
		return 0, err
	}
	return resp.Seconds, nil
}

// FrameToTimecode returns the formatted timecode at a frame index
func (c *DefaultClient) FrameToTimecode(ctx context.Context, frame int, rate, drop string) (string, error) {
	c.ensure()

	v := standardArgs("", rate, drop)
	v.Set("frame", strconv.Itoa(frame))

	var resp timecodeResponse
	err := c.getResource(ctx, &resp, "/frames/timecode", v)
	if err != nil {
		return "", err
	}
	return resp.Timecode, nil
}

// FrameToSeconds returns the elapsed wall seconds at a frame index
func (c *DefaultClient) FrameToSeconds(ctx context.Context, frame int, rate, drop string) (float64, error) {
	c.ensure()

	v := standardArgs("", rate, drop)
	v.Set("frame", strconv.Itoa(frame))

	var resp secondsResponse
	err := c.getResource(ctx, &resp, "/frames/seconds", v)
	if err != nil {
		return 0, err
	}
	return resp.Seconds, nil
}

// Duration renders wall seconds as a compact duration string
func (c *DefaultClient) Duration(ctx context.Context, secs float64) (string, error) {
	c.ensure()

	v := url.Values{}
	v.Set("secs", strconv.FormatFloat(secs, 'f', -1, 64))

	var resp durationResponse
	err := c.getResource(ctx, &resp, "/seconds/duration", v)
	if err != nil {
		return "", err
	}
	return resp.Duration, nil
}

// SecondsToFrame returns the frame index at or before (round "left")
// or at or after (round "right") a wall time
func (c *DefaultClient) SecondsToFrame(ctx context.Context, secs float64, rate, drop, round string) (int, error) {
	c.ensure()

	v := standardArgs("", rate, drop)
	v.Set("secs", strconv.FormatFloat(secs, 'f', -1, 64))
	v.Set("round", round)

	var resp frameResponse
	err := c.getResource(ctx, &resp, "/seconds/frame", v)
	if err != nil {
		return 0, err
	}
	return resp.Frame, nil
}

// SecondsToTimecode is SecondsToFrame rendered as a timecode
func (c *DefaultClient) SecondsToTimecode(ctx context.Context, secs float64, rate, drop, round string) (string, error) {
	c.ensure()

	v := standardArgs("", rate, drop)
	v.Set("secs", strconv.FormatFloat(secs, 'f', -1, 64))
	v.Set("round", round)

	var resp timecodeResponse
	err := c.getResource(ctx, &resp, "/seconds/timecode", v)
	if err != nil {
		return "", err
	}
	return resp.Timecode, nil
}

func (c *DefaultClient) ensure() {
	if c.Base == nil {
		c.Base, _ = url.Parse(defaultBaseURL)
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}
}
