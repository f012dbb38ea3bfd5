// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package apiserver

// This file contains the REST skeleton: content negotiation between
// the two hypermedia conventions, and a resource handler that turns
// engine errors (and panics) into structured error responses.

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/render"
	"github.com/sirupsen/logrus"
	"github.com/ugorji/go/codec"
)

// typeMap canonicalizes acceptable media types to the convention that
// serves them.  Plain JSON callers get HAL, the lighter of the two
// shapes.
var typeMap = map[string]render.Convention{
	"text/json":              render.HAL,
	"application/json":       render.HAL,
	hyperdata.HALMediaType:   render.HAL,
	hyperdata.GraphMediaType: render.JSONGraph,
}

// errBadAccept is returned from negotiate() if the Accept: header is
// malformed (and no more specific error applies).
var errBadAccept = errors.New("Invalid Accept: header")

// errNotAcceptable is returned from negotiate() if the Accept: header
// does not mention any media type we can actually return.
type errNotAcceptable struct{}

func (e errNotAcceptable) Error() string {
	return "No acceptable representation for response"
}

func (e errNotAcceptable) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// errMethodNotAllowed flags an HTTP method with no handler.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

type resourceHandler struct {
	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, builds the document for this resource.
	Get func(*context) (hyperdata.Document, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx    *context
		doc    hyperdata.Document
		err    error
		status int
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := hyperdata.ErrorResponse{}
			response.FromPanic(recovered)
			writeJSON(resp, http.StatusInternalServerError, response)
		}
	}()

	// Settle the response convention first: it decides what a
	// success looks like, and failing to settle it is itself a
	// reportable error.
	status = http.StatusBadRequest
	convention, err := negotiate(req)

	if err == nil {
		ctx, err = h.Context(req)
		if ctx != nil {
			ctx.Convention = convention
		}
	}

	if err == nil {
		// Anything that goes wrong past this point is in
		// handler or engine code
		status = http.StatusInternalServerError
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				doc, err = h.Get(ctx)
			}
		}
	}

	if err != nil {
		if errS, hasStatus := err.(hyperdata.ErrorStatus); hasStatus {
			status = errS.HTTPStatus()
		}
		if status >= 500 {
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"err":    err,
			}).Error("request failed")
		}
		response := hyperdata.ErrorResponse{Error: "error", Message: err.Error()}
		response.FromError(err)
		writeJSON(resp, status, response)
		return
	}

	resp.Header().Set("Content-Type", doc.MediaType)
	resp.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	resp.WriteHeader(http.StatusOK)
	if req.Method != "HEAD" {
		resp.Write(doc.Body)
	}
}

// writeJSON sends a non-document body, such as an error response.
func writeJSON(resp http.ResponseWriter, status int, out interface{}) {
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(status)
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(resp, json)
	encoder.MustEncode(out)
}

// negotiate picks the response convention from the Accept: header,
// following the path laid out in RFC 7231 section 5.3.
func negotiate(req *http.Request) (render.Convention, error) {
	accept := req.Header.Get("Accept")
	if accept == "" {
		accept = "*/*"
	}
	bestType := ""
	bestQ := 0.0
	mediaRanges := strings.Split(accept, ",")
	for _, mediaRange := range mediaRanges {
		mediaRange = strings.TrimSpace(mediaRange)
		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			return 0, hyperdata.ErrBadRequest{Err: err}
		}

		// What is the "q" ("quality") parameter for this type?
		// If it is less than the best known so far, skip it
		q := 1.0
		if qStr, haveQ := params["q"]; haveQ {
			q, err = strconv.ParseFloat(qStr, 64)
			if err != nil {
				return 0, hyperdata.ErrBadRequest{Err: err}
			}
			if q < 0.0 || q > 1.0 {
				return 0, hyperdata.ErrBadRequest{Err: errBadAccept}
			}
		}
		if q < bestQ {
			continue
		}

		// Acceptable if it's in the type map, or one of a
		// couple of wildcards; wildcard precedence applies.
		if mediaType == "*/*" {
			// Doesn't override anything.
			if q > bestQ {
				bestType = mediaType
				bestQ = q
			}
		} else if mediaType == "text/*" || mediaType == "application/*" {
			// Only overrides "*/*".
			if q > bestQ || bestType == "*/*" {
				bestType = mediaType
				bestQ = q
			}
		} else if _, knownType := typeMap[mediaType]; knownType {
			// Overrides any wildcard.  The first type at a
			// given q wins.
			if q > bestQ || bestType == "*/*" || bestType == "text/*" || bestType == "application/*" {
				bestType = mediaType
				bestQ = q
			}
		}
		// Anything else is a type we don't recognize at all;
		// drop it.
	}
	if bestQ == 0.0 {
		return 0, errNotAcceptable{}
	}
	switch bestType {
	case "*/*", "application/*", "text/*":
		return render.HAL, nil
	default:
		return typeMap[bestType], nil
	}
}
