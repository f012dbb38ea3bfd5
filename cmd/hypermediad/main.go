// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package hypermediad runs the hypermedia API daemon.  It serves the
// entities in its store as discoverable, link-driven documents in
// either supported convention, selected by content negotiation.  With
// no arguments it serves a small demo catalog of orders, items, and
// customers.
package main

import (
	"flag"
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/isra-skyler/laravel-austin/apiserver"
	"github.com/isra-skyler/laravel-austin/memstore"
	"github.com/isra-skyler/laravel-austin/resolver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

func main() {
	httpBind := flag.String("http", ":8080",
		"[ip]:port for the HTTP interface")
	routesFile := flag.String("routes", "",
		"link template YAML file (empty for the demo table)")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	var (
		res *resolver.Resolver
		err error
	)
	if *routesFile != "" {
		res, err = resolver.Load(*routesFile)
	} else {
		res, err = resolver.New(demoTemplates())
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not load link templates")
		return
	}

	store := memstore.New()
	if *routesFile == "" {
		if err = seedDemo(store); err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Could not seed demo catalog")
			return
		}
	}

	router := mux.NewRouter()
	apiserver.PopulateRouter(router, store, res)
	router.Handle("/metrics", promhttp.Handler())

	n := negroni.New()
	n.Use(&requestID{})
	if *logRequests {
		n.Use(&requestLog{
			Clock:  clock.New(),
			Logger: logrus.StandardLogger(),
		})
	}
	n.Use(&documentMetrics{})
	n.UseHandler(router)

	logrus.WithFields(logrus.Fields{
		"bind": *httpBind,
	}).Info("Serving hypermedia API")
	err = http.ListenAndServe(*httpBind, n)
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP server stopped")
}
