// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package traverse consumes hypermedia documents of either supported
// convention and exposes the relations they advertise, without any
// prior knowledge of the API's resource types or endpoint structure.
// Everything it knows, it learned from the document: this is the
// piece that lets a generic client be written once and work against
// any entity type the server exposes.
package traverse

import (
	"mime"
	"net/url"

	"github.com/isra-skyler/laravel-austin/hyperdata"
)

// Doc is a parsed hypermedia document of known convention.
type Doc struct {
	root  hyperdata.Fields
	graph bool
	body  []byte

	// base is the URL the document was fetched from, if it was
	// fetched; relation URLs resolve relative to it.
	base *url.URL
}

// Parse reads a document body.  The convention comes from the media
// type; a plain application/json body is classified by shape (a
// top-level "data" member means the graph convention).
func Parse(mediaType string, body []byte) (*Doc, error) {
	mt := ""
	if mediaType != "" {
		var err error
		mt, _, err = mime.ParseMediaType(mediaType)
		if err != nil {
			return nil, err
		}
	}

	var root hyperdata.Fields
	if err := root.UnmarshalJSON(body); err != nil {
		return nil, err
	}

	doc := &Doc{root: root, body: body}
	switch mt {
	case hyperdata.HALMediaType:
		doc.graph = false
	case hyperdata.GraphMediaType:
		doc.graph = true
	case "", "application/json", "text/json":
		_, hasData := root.Get("data")
		doc.graph = hasData
	default:
		return nil, hyperdata.ErrUnsupportedMediaType{Type: mt}
	}
	return doc, nil
}

// Body returns the raw document bytes.
func (d *Doc) Body() []byte { return d.body }

// relationships finds the relationship mapping for either convention:
// "_links" for HAL, "relationships" (inside "data", or top-level on
// degenerate documents) for the graph shape.
func (d *Doc) relationships() (hyperdata.Fields, bool) {
	if !d.graph {
		links, ok := d.root.Get("_links")
		if !ok {
			return hyperdata.Fields{}, false
		}
		return links.MappingVal()
	}
	if data, ok := d.root.Get("data"); ok {
		if dm, ok := data.MappingVal(); ok {
			if rels, ok := dm.Get("relationships"); ok {
				return rels.MappingVal()
			}
		}
	}
	if rels, ok := d.root.Get("relationships"); ok {
		return rels.MappingVal()
	}
	return hyperdata.Fields{}, false
}

// Relations returns the relation names the document advertises, in
// the order they appear in it.  The reserved "self" link is not a
// relation and is skipped.
func (d *Doc) Relations() []string {
	rels, ok := d.relationships()
	if !ok {
		return nil
	}
	names := []string{}
	for _, name := range rels.Names() {
		if name == "self" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// RelationURL returns the URL to fetch for a relation.  For HAL this
// is the link's href; for the graph convention it is the "related"
// link, or failing that a URL constructed from the first resource
// identifier.  The second return is false when the document does not
// advertise the relation (or advertises it with nothing to follow),
// which is a normal state for the caller to handle, not a failure.
func (d *Doc) RelationURL(name string) (string, bool) {
	rels, ok := d.relationships()
	if !ok {
		return "", false
	}
	entry, ok := rels.Get(name)
	if !ok {
		return "", false
	}
	em, ok := entry.MappingVal()
	if !ok {
		return "", false
	}

	if !d.graph {
		h, ok := em.Get("href")
		if !ok {
			return "", false
		}
		return h.StringVal()
	}

	if links, ok := em.Get("links"); ok {
		if lm, ok := links.MappingVal(); ok {
			if related, ok := lm.Get("related"); ok {
				if s, ok := related.StringVal(); ok {
					return s, true
				}
			}
		}
	}

	// The convention allows links to be omitted; fall back to the
	// first resource identifier.
	data, ok := em.Get("data")
	if !ok {
		return "", false
	}
	var first hyperdata.Fields
	switch data.Kind() {
	case hyperdata.Mapping:
		first, _ = data.MappingVal()
	case hyperdata.Sequence:
		seq := data.SequenceVal()
		if len(seq) == 0 {
			return "", false
		}
		first, ok = seq[0].MappingVal()
		if !ok {
			return "", false
		}
	default:
		return "", false
	}
	t, _ := first.Get("type")
	i, _ := first.Get("id")
	ts, tok := t.StringVal()
	is, iok := i.StringVal()
	if !tok || !iok {
		return "", false
	}
	return "/" + hyperdata.MaybeEncodeName(ts) + "/" + hyperdata.MaybeEncodeName(is), true
}

// Attribute reads one of the document's own attribute fields: a
// top-level field for HAL (the reserved sections are not attributes),
// or a member of data.attributes for the graph shape.
func (d *Doc) Attribute(name string) (hyperdata.Value, bool) {
	if !d.graph {
		if name == "_links" || name == "_embedded" {
			return hyperdata.Value{}, false
		}
		return d.root.Get(name)
	}
	data, ok := d.root.Get("data")
	if !ok {
		return hyperdata.Value{}, false
	}
	dm, ok := data.MappingVal()
	if !ok {
		return hyperdata.Value{}, false
	}
	attrs, ok := dm.Get("attributes")
	if !ok {
		return hyperdata.Value{}, false
	}
	am, ok := attrs.MappingVal()
	if !ok {
		return hyperdata.Value{}, false
	}
	return am.Get(name)
}
