// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/benbjohnson/clock"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requestID tags every request and response with an X-Request-Id
// header so log lines can be matched to responses.
type requestID struct{}

func (m *requestID) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	id := req.Header.Get("X-Request-Id")
	if id == "" {
		id = uuid.NewV4().String()
		req.Header.Set("X-Request-Id", id)
	}
	rw.Header().Set("X-Request-Id", id)
	next(rw, req)
}

// requestLog writes one structured log line per request.  The clock
// is injectable so tests can use a mock time source.
type requestLog struct {
	Clock  clock.Clock
	Logger *logrus.Logger
}

func (m *requestLog) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := m.Clock.Now()
	nrw, ok := rw.(negroni.ResponseWriter)
	if !ok {
		nrw = negroni.NewResponseWriter(rw)
	}
	next(nrw, req)
	m.Logger.WithFields(logrus.Fields{
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     nrw.Status(),
		"duration":   m.Clock.Now().Sub(start),
		"request_id": req.Header.Get("X-Request-Id"),
	}).Info("request")
}
