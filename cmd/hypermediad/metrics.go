// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/negroni"
)

var documentsRendered = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hypermedia",
		Subsystem: "api",
		Name:      "documents_rendered_total",
		Help:      "Documents served, by hypermedia convention",
	},
	[]string{
		"convention",
	},
)

func init() {
	prometheus.MustRegister(documentsRendered)
}

// documentMetrics counts successful document responses per
// convention, keyed off the Content-Type actually served.
type documentMetrics struct{}

func (m *documentMetrics) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	nrw, ok := rw.(negroni.ResponseWriter)
	if !ok {
		nrw = negroni.NewResponseWriter(rw)
	}
	next(nrw, req)
	var convention string
	switch nrw.Header().Get("Content-Type") {
	case hyperdata.HALMediaType:
		convention = "hal"
	case hyperdata.GraphMediaType:
		convention = "jsongraph"
	default:
		return
	}
	documentsRendered.With(prometheus.Labels{
		"convention": convention,
	}).Inc()
}
