// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

var errNotAnObject = errors.New("JSON value is not an object")

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnresolvedRelation is returned by the link resolver when an
// in-use (entity type, relation) pair has no template entry.  This is
// a configuration defect, not a per-request condition: the routing
// table is incomplete, and the in-flight response fails with a
// server-side error.
type ErrUnresolvedRelation struct {
	EntityType string
	Relation   string
}

func (e ErrUnresolvedRelation) Error() string {
	return fmt.Sprintf("no link template for type %q relation %q",
		e.EntityType, e.Relation)
}

// HTTPStatus returns a fixed 500 Internal Server Error code.
func (e ErrUnresolvedRelation) HTTPStatus() int {
	return http.StatusInternalServerError
}

// ErrMalformedGraph is returned by the document builders when a
// relation descriptor violates its own declared shape.
type ErrMalformedGraph struct {
	EntityType string
	EntityID   string
	Relation   string
	Reason     string
}

func (e ErrMalformedGraph) Error() string {
	return fmt.Sprintf("malformed graph at %s/%s relation %q: %s",
		e.EntityType, e.EntityID, e.Relation, e.Reason)
}

// HTTPStatus returns a fixed 500 Internal Server Error code; a
// malformed graph is a defect in the calling code, not in the request.
func (e ErrMalformedGraph) HTTPStatus() int {
	return http.StatusInternalServerError
}

// ErrUnsupportedConvention is returned from builder dispatch when the
// requested convention has no registered builder.  This surfaces as a
// negotiation failure, not a server fault.
type ErrUnsupportedConvention struct {
	Convention string
}

func (e ErrUnsupportedConvention) Error() string {
	return fmt.Sprintf("unsupported hypermedia convention %q", e.Convention)
}

// HTTPStatus returns a fixed 406 Not Acceptable code.
func (e ErrUnsupportedConvention) HTTPStatus() int {
	return http.StatusNotAcceptable
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, the server should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned when there is an error decoding HTTP
// headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrorResponse can be the body of any failing response.
type ErrorResponse struct {
	// Error is a short code naming the failure kind: one of the
	// engine error names, the string "panic", or the string
	// "error" for anything else.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}

// FromError populates an ErrorResponse based on an error value,
// mapping the engine's well-known errors to specific codes.
func (e *ErrorResponse) FromError(err error) {
	switch et := err.(type) {
	case ErrUnresolvedRelation:
		e.Error = "ErrUnresolvedRelation"
		e.Value = et.EntityType + "/" + et.Relation
	case ErrMalformedGraph:
		e.Error = "ErrMalformedGraph"
		e.Value = et.EntityType + "/" + et.EntityID + "/" + et.Relation
	case ErrUnsupportedConvention:
		e.Error = "ErrUnsupportedConvention"
		e.Value = et.Convention
	case ErrUnsupportedMediaType:
		e.Error = "ErrUnsupportedMediaType"
		e.Value = et.Type
	case ErrNotFound:
		// Discard the wrapper and report the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to an engine error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrUnresolvedRelation":
		return ErrUnresolvedRelation{Relation: e.Value}
	case "ErrMalformedGraph":
		return ErrMalformedGraph{Reason: e.Message}
	case "ErrUnsupportedConvention":
		return ErrUnsupportedConvention{Convention: e.Value}
	case "ErrUnsupportedMediaType":
		return ErrUnsupportedMediaType{Type: e.Value}
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := hyperdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//     }()
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
