// Command tccalc exposes the timecode conversions for shell use, one
// subcommand per operation. Results print to stdout; invalid input
// exits non-zero with the reason.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/cbsinteractive/timecode-api/timecode"
)

type standardFlags struct {
	Rate string `help:"Frame rate label, like 29.97 or 50.00" required:""`
	Drop string `help:"Frame counting: drop or non-drop" default:"non-drop"`
}

type CheckCmd struct {
	standardFlags
	Timecode string `arg:"" help:"Timecode text or packed integer HHMMSSFF"`
}

type FrameCmd struct {
	standardFlags
	Timecode string `arg:"" help:"Timecode text or packed integer HHMMSSFF"`
}

type TimecodeCmd struct {
	standardFlags
	Frame int `arg:"" help:"Linear frame index"`
}

type SecondsCmd struct {
	standardFlags
	Timecode string `arg:"" help:"Timecode text or packed integer HHMMSSFF"`
}

type FrameSecondsCmd struct {
	standardFlags
	Frame int `arg:"" help:"Linear frame index"`
}

type BetweenCmd struct {
	standardFlags
	Start string `arg:"" help:"Start timecode"`
	End   string `arg:"" help:"End timecode"`
}

type DurationCmd struct {
	Secs float64 `arg:"" help:"Wall-clock seconds"`
}

type BoundaryCmd struct {
	standardFlags
	Secs       float64 `arg:"" help:"Wall-clock seconds"`
	AsTimecode bool    `help:"Print a timecode instead of a frame index"`
}

type LeftCmd struct{ BoundaryCmd }
type RightCmd struct{ BoundaryCmd }

type CLI struct {
	Check        CheckCmd        `cmd:"" help:"Report whether a timecode is valid under a standard"`
	Frame        FrameCmd        `cmd:"" help:"Convert a timecode to its frame index"`
	Timecode     TimecodeCmd     `cmd:"" help:"Convert a frame index to a timecode"`
	Seconds      SecondsCmd      `cmd:"" help:"Convert a timecode to wall-clock seconds"`
	FrameSeconds FrameSecondsCmd `cmd:"" name:"frame-seconds" help:"Convert a frame index to wall-clock seconds"`
	Between      BetweenCmd      `cmd:"" help:"Wall-clock seconds between two timecodes"`
	Duration     DurationCmd     `cmd:"" help:"Render wall-clock seconds as a duration string"`
	Left         LeftCmd         `cmd:"" help:"Nearest frame at or before a wall time"`
	Right        RightCmd        `cmd:"" help:"Nearest frame at or after a wall time"`
}

// tcArg picks the input form of a raw timecode argument: all digits
// means the legacy packed-integer form, anything else is text.
func tcArg(raw string) interface{} {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return raw
}

func (cmd *CheckCmd) Run() error {
	msg := timecode.Check(tcArg(cmd.Timecode), cmd.Rate, cmd.Drop)
	if msg == "" {
		fmt.Println("valid")
		return nil
	}
	fmt.Println(msg)
	return nil
}

func (cmd *FrameCmd) Run() error {
	n, err := timecode.ToFrame(tcArg(cmd.Timecode), cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func (cmd *TimecodeCmd) Run() error {
	tc, err := timecode.ToTimecode(cmd.Frame, cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(tc)
	return nil
}

func (cmd *SecondsCmd) Run() error {
	secs, err := timecode.ToWallSecs(tcArg(cmd.Timecode), cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(strconv.FormatFloat(secs, 'f', -1, 64))
	return nil
}

func (cmd *FrameSecondsCmd) Run() error {
	secs, err := timecode.FrameToWallSecs(cmd.Frame, cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(strconv.FormatFloat(secs, 'f', -1, 64))
	return nil
}

func (cmd *BetweenCmd) Run() error {
	secs, err := timecode.WallSecsBetween(tcArg(cmd.Start), tcArg(cmd.End), cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(strconv.FormatFloat(secs, 'f', -1, 64))
	return nil
}

func (cmd *DurationCmd) Run() error {
	d, err := timecode.DurationString(cmd.Secs)
	if err != nil {
		return err
	}
	fmt.Println(d)
	return nil
}

func (cmd *LeftCmd) Run() error {
	if cmd.AsTimecode {
		tc, err := timecode.WallSecsToTimecodeLeft(cmd.Secs, cmd.Rate, cmd.Drop)
		if err != nil {
			return err
		}
		fmt.Println(tc)
		return nil
	}
	n, err := timecode.WallSecsToFrameLeft(cmd.Secs, cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func (cmd *RightCmd) Run() error {
	if cmd.AsTimecode {
		tc, err := timecode.WallSecsToTimecodeRight(cmd.Secs, cmd.Rate, cmd.Drop)
		if err != nil {
			return err
		}
		fmt.Println(tc)
		return nil
	}
	n, err := timecode.WallSecsToFrameRight(cmd.Secs, cmd.Rate, cmd.Drop)
	if err != nil {
		return err
	}
	fmt.Println(n)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
