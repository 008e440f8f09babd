package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/NYTimes/gziphandler"
	"github.com/cbsinteractive/timecode-api/config"
	"github.com/cbsinteractive/timecode-api/service/exceptions"
	"github.com/cbsinteractive/timecode-api/timecode"
	"github.com/sirupsen/logrus"
)

// Server exposes the timecode conversion operations over HTTP. Every
// endpoint takes its inputs as query parameters and returns a single
// primitive result as JSON; the conversions themselves live in the
// timecode package and this layer only translates.
type Server struct {
	Config      *config.Config
	logger      *logrus.Logger
	errReporter exceptions.Reporter
}

// NewTimecodeService initializes the service with the given
// configuration and logger.
func NewTimecodeService(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	reporter := exceptions.Reporter(&exceptions.NoopReporter{})
	if cfg.SentryDSN != "" {
		r, err := exceptions.NewSentryReporter(cfg.SentryDSN, cfg.Env)
		if err != nil {
			return nil, err
		}
		reporter = r
	}
	return &Server{Config: cfg, logger: logger, errReporter: reporter}, nil
}

// Prefix returns the string prefixed to every endpoint path.
func (s *Server) Prefix() string {
	return "/v1"
}

// Middleware wraps the service handlers with gzip compression.
func (s *Server) Middleware(h http.Handler) http.Handler {
	return gziphandler.GzipHandler(h)
}

// Endpoints maps the operation surface onto routes.
func (s *Server) Endpoints() map[string]map[string]http.HandlerFunc {
	return map[string]map[string]http.HandlerFunc{
		"/timecodes/check":   {"GET": s.checkTimecode},
		"/timecodes/frame":   {"GET": s.timecodeToFrame},
		"/timecodes/seconds": {"GET": s.timecodeToSeconds},
		"/timecodes/between": {"GET": s.secondsBetween},
		"/frames/timecode":   {"GET": s.frameToTimecode},
		"/frames/seconds":    {"GET": s.frameToSeconds},
		"/seconds/duration":  {"GET": s.duration},
		"/seconds/frame":     {"GET": s.secondsToFrame},
		"/seconds/timecode":  {"GET": s.secondsToTimecode},
	}
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

func (s *Server) checkTimecode(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	msg := timecode.Check(timecodeArg(req.q("tc")), req.q("rate"), req.q("drop"))
	req.writebody(checkResponse{Error: msg})
}

func (s *Server) timecodeToFrame(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	n, err := timecode.ToFrame(timecodeArg(req.q("tc")), req.q("rate"), req.q("drop"))
	if err != nil {
		s.fail(&req, "timecode to frame failed", err)
		return
	}
	req.writebody(frameResponse{Frame: n})
}

func (s *Server) timecodeToSeconds(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	secs, err := timecode.ToWallSecs(timecodeArg(req.q("tc")), req.q("rate"), req.q("drop"))
	if err != nil {
		s.fail(&req, "timecode to seconds failed", err)
		return
	}
	req.writebody(secondsResponse{Seconds: secs})
}

func (s *Server) secondsBetween(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	secs, err := timecode.WallSecsBetween(
		timecodeArg(req.q("start")),
		timecodeArg(req.q("end")),
		req.q("rate"), req.q("drop"),
	)
	if err != nil {
		s.fail(&req, "seconds between timecodes failed", err)
		return
	}
	req.writebody(secondsResponse{Seconds: secs})
}

func (s *Server) frameToTimecode(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	frame, err := strconv.Atoi(req.q("frame"))
	if err != nil {
		req.writeerror("bad frame parameter", 400, err)
		return
	}
	tc, err := timecode.ToTimecode(frame, req.q("rate"), req.q("drop"))
	if err != nil {
		s.fail(&req, "frame to timecode failed", err)
		return
	}
	req.writebody(timecodeResponse{Timecode: tc})
}

func (s *Server) frameToSeconds(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	frame, err := strconv.Atoi(req.q("frame"))
	if err != nil {
		req.writeerror("bad frame parameter", 400, err)
		return
	}
	secs, err := timecode.FrameToWallSecs(frame, req.q("rate"), req.q("drop"))
	if err != nil {
		s.fail(&req, "frame to seconds failed", err)
		return
	}
	req.writebody(secondsResponse{Seconds: secs})
}

func (s *Server) duration(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	secs, err := strconv.ParseFloat(req.q("secs"), 64)
	if err != nil {
		req.writeerror("bad secs parameter", 400, err)
		return
	}
	d, err := timecode.DurationString(secs)
	if err != nil {
		s.fail(&req, "duration string failed", err)
		return
	}
	req.writebody(durationResponse{Duration: d})
}

func (s *Server) secondsToFrame(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	secs, err := strconv.ParseFloat(req.q("secs"), 64)
	if err != nil {
		req.writeerror("bad secs parameter", 400, err)
		return
	}
	var n int
	switch req.q("round") {
	case "left":
		n, err = timecode.WallSecsToFrameLeft(secs, req.q("rate"), req.q("drop"))
	case "right":
		n, err = timecode.WallSecsToFrameRight(secs, req.q("rate"), req.q("drop"))
	default:
		req.writeerror("bad round parameter, want left or right", 400, nil)
		return
	}
	if err != nil {
		s.fail(&req, "seconds to frame failed", err)
		return
	}
	req.writebody(frameResponse{Frame: n})
}

func (s *Server) secondsToTimecode(w http.ResponseWriter, r *http.Request) {
	req := newRequest(w, r)
	defer req.finalize()
	secs, err := strconv.ParseFloat(req.q("secs"), 64)
	if err != nil {
		req.writeerror("bad secs parameter", 400, err)
		return
	}
	var tc string
	switch req.q("round") {
	case "left":
		tc, err = timecode.WallSecsToTimecodeLeft(secs, req.q("rate"), req.q("drop"))
	case "right":
		tc, err = timecode.WallSecsToTimecodeRight(secs, req.q("rate"), req.q("drop"))
	default:
		req.writeerror("bad round parameter, want left or right", 400, nil)
		return
	}
	if err != nil {
		s.fail(&req, "seconds to timecode failed", err)
		return
	}
	req.writebody(timecodeResponse{Timecode: tc})
}

// fail writes the conversion error to the client. Anything that is
// not an InvalidInput error has no business coming out of the
// timecode package and gets reported.
func (s *Server) fail(req *request, msg string, err error) {
	code := 400
	if !errors.Is(err, timecode.ErrInvalidInput) {
		code = 500
		s.logger.WithError(err).Error(msg)
		s.errReporter.ReportException(err)
	}
	req.writeerror(msg, code, err)
}

// timecodeArg picks the input form of a raw timecode parameter: an
// all-digits value is the legacy packed-integer form, anything else
// is treated as text.
func timecodeArg(raw string) interface{} {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return n
	}
	return raw
}

// PlatformError implements a well-known error response for http clients
// encountering an error when using the service.
type PlatformError struct {
	Ok     bool   `json:"ok"`
	Status int    `json:"status"`
	Rid    string `json:"rid"`
	Msg    string `json:"msg,omitempty"`
}

// String returns the json-formatted platform response
func (p PlatformError) String() string {
	data, _ := json.Marshal(p)
	return string(data)
}

func logkv(kv ...interface{}) bool {
	msg := `{`
	sep := " "
	for i := 0; i+1 < len(kv); i += 2 {
		v := kv[i+1]
		if v == nil {
			v = ""
		} else {
			switch v.(type) {
			case fmt.Stringer:
				v = fmt.Sprint(v)
			case error:
				v = fmt.Sprint(v)
			}
		}
		value, _ := json.Marshal(v)
		msg += fmt.Sprintf(`%s%q:%s`, sep, kv[i], string(value))
		sep = ", "
	}
	msg += `}`
	log.Println(msg)
	return true
}
