package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gofrs/uuid"
)

// request is always scoped to a single http request handled by the server
type request struct {
	w http.ResponseWriter
	r *http.Request

	query url.Values

	start       time.Time
	rid         uuid.UUID
	wrote       int
	ip, port    string
	err, logerr error
}

// newRequest initializes request scoped structures, context and counters;
// finalize should be deferred to log request details on the way out
func newRequest(w http.ResponseWriter, rq *http.Request) request {
	r := request{
		r:     rq,
		w:     w,
		query: rq.URL.Query(),
		start: time.Now(),
		rid:   uuid.Must(uuid.NewV4()),
	}
	r.ip = r.r.Header.Get("X-Forwarded-For")
	r.port = r.r.Header.Get("X-Forwarded-Port")
	if r.ip == "" {
		r.ip, r.port, _ = net.SplitHostPort(r.r.RemoteAddr)
	}
	r.log(
		"ip", r.ip,
		"port", r.port,
		"raddr", r.r.RemoteAddr,
		"method", r.r.Method,
		"path", r.r.URL.Path,
		"ref", r.r.Referer(),
		"ua", r.r.UserAgent(),
	)
	return r
}

func (r *request) finalize() {
	if r.logerr == nil {
		r.logerr = r.err
	}
	r.log(
		"tx", r.wrote,
		"ms", time.Since(r.start).Milliseconds(),
		"err", r.logerr,
	)
}

func (s *request) ok() bool {
	return s.err == nil
}

// q returns the named query parameter
func (s *request) q(name string) string {
	return s.query.Get(name)
}

func (s *request) writeerror(msg string, code int, err error) bool {
	s.log(
		"msg", msg,
		"code", code,
		"err", err,
	)
	s.logerr = err
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	s.w.Header().Set("content-type", "application/json")
	s.w.WriteHeader(code)
	fmt.Fprintln(s.w, PlatformError{
		Ok:     false,
		Status: code,
		Rid:    s.rid.String(),
		Msg:    msg,
	}.String())
	return false
}

func (s *request) log(kv ...interface{}) {
	logkv(append([]interface{}{
		"t", time.Now().UnixNano(),
		"rid", s.rid,
	}, kv...)...)
}

func (s *request) writebody(data interface{}, mimeType ...string) bool {
	if len(mimeType) != 0 {
		s.w.Header().Set("Content-Type", mimeType[0])
	}
	switch t := data.(type) {
	case io.WriterTo:
		n, err := t.WriteTo(s.w)
		s.wrote, s.err = int(n), err
	case []byte:
		s.wrote, s.err = s.w.Write(t)
	case string:
		s.wrote, s.err = s.w.Write([]byte(t))
	case interface{}:
		data, _ := json.Marshal(t)
		s.wrote, s.err = s.w.Write(data)
	}
	return s.ok()
}
