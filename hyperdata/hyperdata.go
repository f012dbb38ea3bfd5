// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package hyperdata defines the in-memory resource graph model shared
// between the document builders in the render package, the apiserver
// package, and the client-side traverse package, along with the wire
// media types and the error model for the whole engine.
//
// API Usage
//
// HTTP GET any resource at its canonical URL.  The response is a
// hypermedia document in one of two conventions, selected by content
// negotiation: a HAL document (application/hal+json) carrying a
// reserved "_links" section, or a resource/relationship graph document
// (application/vnd.api+json) carrying "data", "relationships", and
// "included" sections.  Both shapes embed enough links that a client
// can enumerate the available relations and follow them without any
// prior knowledge of the API's resource types; the traverse package
// does exactly that.
//
// While the URL structure produced by the resolver package is
// predictable and formulaic, it is not part of the API contract.  The
// only guarantee is that every document links to itself under "self"
// and to each of its relations under the relation's name.
//
// Encoding Considerations
//
// Attribute values are a closed set of tagged kinds (null, bool,
// number, string, sequence, mapping) held in insertion order.  The
// order matters: both conventions emit attribute fields, then links,
// then embedded resources, and building the same graph twice must
// produce byte-identical documents.  Numbers keep the text they were
// constructed or parsed with, so 42 never resurfaces as 42.0.
//
// Entity names and ids that cannot appear in a URL path segment
// unescaped are base64 encoded with a leading hyphen; see
// MaybeEncodeName.
package hyperdata

import (
	"io"
	"mime"

	"github.com/ugorji/go/codec"
)

// HALMediaType is the MIME type of the link-annotation convention.
const HALMediaType = "application/hal+json"

// GraphMediaType is the MIME type of the resource/relationship graph
// convention.
const GraphMediaType = "application/vnd.api+json"

// Document is a fully serialized response body plus the media type it
// should be served with.  Documents are built fresh per request and
// never cached or retained.
type Document struct {
	// MediaType holds the exact Content-Type for the body.
	MediaType string

	// Body holds the serialized document bytes.
	Body []byte
}

// Decode reads a JSON-encoded object from a reader, such as an HTTP
// request or response body, honoring the declared content type.  out
// must be a pointer type.  Both hypermedia media types, plain JSON,
// and text/json all decode the same way; anything else returns
// ErrUnsupportedMediaType.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", "application/json", HALMediaType, GraphMediaType:
	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(r, json)
	return decoder.Decode(out)
}

// EncodeJSON serializes an object as JSON onto a writer.  This is the
// encoder used for error responses and other non-document bodies;
// documents themselves carry pre-serialized bytes.
func EncodeJSON(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}

// EncodeJSONString returns the JSON encoding of a string, quotes and
// escapes included.  The document builders use this to splice member
// names and URLs into hand-ordered output.
func EncodeJSONString(s string) []byte {
	var out []byte
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoderBytes(&out, json)
	encoder.MustEncode(s)
	return out
}

// appendJSONString appends the JSON encoding of a string, quotes and
// escapes included, to a byte buffer.
func appendJSONString(buf []byte, s string) []byte {
	return append(buf, EncodeJSONString(s)...)
}
