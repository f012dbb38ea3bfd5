// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package traverse

// This file provides the generic HTTP side of the traversal helper:
// fetch a document, follow its relations by name, repeat.

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/isra-skyler/laravel-austin/hyperdata"
)

// defaultAccept asks for either hypermedia convention, preferring HAL.
const defaultAccept = hyperdata.HALMediaType + ", " +
	hyperdata.GraphMediaType + ";q=0.9, application/json;q=0.8"

// Browser fetches and follows hypermedia documents.  The zero value
// uses http.DefaultClient and accepts either convention.
type Browser struct {
	// Client is the HTTP client to use; nil means
	// http.DefaultClient.
	Client *http.Client

	// Accept overrides the Accept header sent with every request.
	Accept string
}

func (b *Browser) client() *http.Client {
	if b.Client == nil {
		return http.DefaultClient
	}
	return b.Client
}

// Get retrieves and parses the document at a URL.
func (b *Browser) Get(rawurl string) (doc *Doc, err error) {
	req, err := http.NewRequest("GET", rawurl, nil)
	if err != nil {
		return nil, err
	}
	accept := b.Accept
	if accept == "" {
		accept = defaultAccept
	}
	req.Header.Set("Accept", accept)

	resp, err := b.client().Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Body != nil {
		defer func() {
			err = firstError(err, resp.Body.Close())
		}()
	}
	if err = checkHTTPStatus(resp); err != nil {
		return nil, err
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	doc, err = Parse(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return nil, err
	}
	doc.base = resp.Request.URL
	return doc, nil
}

// Follow starts at a URL and follows a chain of relation names,
// returning the final document.  Relation URLs are resolved relative
// to the document they came from.
func (b *Browser) Follow(start string, relations ...string) (*Doc, error) {
	doc, err := b.Get(start)
	if err != nil {
		return nil, err
	}
	for _, relation := range relations {
		href, ok := doc.RelationURL(relation)
		if !ok {
			return nil, fmt.Errorf("document at %v has no relation %q", doc.base, relation)
		}
		next, err := resolveRef(doc.base, href)
		if err != nil {
			return nil, err
		}
		doc, err = b.Get(next.String())
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// resolveRef interprets href relative to base, if there is a base.
func resolveRef(base *url.URL, href string) (*url.URL, error) {
	if base == nil {
		return url.Parse(href)
	}
	return base.Parse(href)
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// remote endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	return e.Response.Status
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.
func checkHTTPStatus(resp *http.Response) error {
	if len(resp.Status) > 0 && resp.Status[0] == '2' {
		return nil
	}

	// Collect the entire body up front; it is the fallback error
	// text and can only be parsed once.
	var body []byte
	var err error
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
	}

	// Take a shot at decoding it as a structured error
	var errResp hyperdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	err2 := hyperdata.Decode(contentType, bytes.NewReader(body), &errResp)
	if err2 == nil && errResp.Error != "" {
		return errResp.ToError()
	}

	return ErrorHTTP{Response: resp, Body: string(body)}
}

func firstError(e1, e2 error) error {
	if e1 != nil {
		return e1
	}
	return e2
}
