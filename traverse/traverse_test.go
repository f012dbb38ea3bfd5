// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package traverse

import (
	"testing"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/render"
	"github.com/isra-skyler/laravel-austin/resolver"
	"github.com/stretchr/testify/assert"
)

const halOrder = `{"total":42,` +
	`"_links":{` +
	`"self":{"href":"/orders/1"},` +
	`"items":{"href":"/orders/1/items"},` +
	`"customer":{"href":"/orders/1/customer"}}}`

const graphOrder = `{"data":{"type":"order","id":"1",` +
	`"attributes":{"total":42},` +
	`"relationships":{` +
	`"items":{"links":{"related":"/orders/1/items"},` +
	`"data":[{"type":"item","id":"5"},{"type":"item","id":"3"}]},` +
	`"customer":{"links":{"related":"/orders/1/customer"},` +
	`"data":{"type":"customer","id":"7"}}}}}`

func TestParseHAL(t *testing.T) {
	doc, err := Parse(hyperdata.HALMediaType, []byte(halOrder))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []string{"items", "customer"}, doc.Relations())

	url, ok := doc.RelationURL("items")
	assert.True(t, ok)
	assert.Equal(t, "/orders/1/items", url)

	_, ok = doc.RelationURL("warehouse")
	assert.False(t, ok)

	total, ok := doc.Attribute("total")
	assert.True(t, ok)
	assert.Equal(t, "42", total.NumberText())

	// The reserved sections are not attributes
	_, ok = doc.Attribute("_links")
	assert.False(t, ok)
}

func TestParseGraph(t *testing.T) {
	doc, err := Parse(hyperdata.GraphMediaType, []byte(graphOrder))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []string{"items", "customer"}, doc.Relations())

	url, ok := doc.RelationURL("customer")
	assert.True(t, ok)
	assert.Equal(t, "/orders/1/customer", url)

	total, ok := doc.Attribute("total")
	assert.True(t, ok)
	assert.Equal(t, "42", total.NumberText())
}

func TestParseSniffsPlainJSON(t *testing.T) {
	doc, err := Parse("application/json", []byte(graphOrder))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, []string{"items", "customer"}, doc.Relations())

	doc, err = Parse("application/json", []byte(halOrder))
	if !assert.NoError(t, err) {
		return
	}
	url, ok := doc.RelationURL("items")
	assert.True(t, ok)
	assert.Equal(t, "/orders/1/items", url)
}

func TestParseUnsupportedMediaType(t *testing.T) {
	_, err := Parse("text/html", []byte(`{}`))
	_, ok := err.(hyperdata.ErrUnsupportedMediaType)
	assert.True(t, ok, "expected ErrUnsupportedMediaType, got %v", err)
}

func TestParseBadBody(t *testing.T) {
	_, err := Parse(hyperdata.HALMediaType, []byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestGraphIdentifierFallback(t *testing.T) {
	// Relationship entries may omit "links"; the URL then comes from
	// the first resource identifier, with names escaped the same way
	// the server escapes path segments.
	body := `{"data":{"type":"order","id":"1","attributes":{},` +
		`"relationships":{` +
		`"items":{"data":[{"type":"item","id":"5"},{"type":"item","id":"3"}]},` +
		`"audit":{"data":{"type":"line items","id":"9"}},` +
		`"drafts":{"data":[]}}}}`
	doc, err := Parse(hyperdata.GraphMediaType, []byte(body))
	if !assert.NoError(t, err) {
		return
	}

	url, ok := doc.RelationURL("items")
	assert.True(t, ok)
	assert.Equal(t, "/item/5", url)

	url, ok = doc.RelationURL("audit")
	assert.True(t, ok)
	assert.Equal(t, "/-bGluZSBpdGVtcw/9", url)

	// Nothing to follow: not an error, just absent
	_, ok = doc.RelationURL("drafts")
	assert.False(t, ok)
}

func TestNoRelations(t *testing.T) {
	doc, err := Parse(hyperdata.HALMediaType, []byte(`{"total":42}`))
	if !assert.NoError(t, err) {
		return
	}
	assert.Empty(t, doc.Relations())
	_, ok := doc.RelationURL("items")
	assert.False(t, ok)
}

// TestRoundTrip renders documents with the real builders and checks
// that the traversal side discovers exactly what the server advertised.
func TestRoundTrip(t *testing.T) {
	res, err := resolver.New(resolver.Templates{
		"order": {
			"self":     "/orders/{id}",
			"items":    "/orders/{id}/items",
			"customer": "/orders/{id}/customer",
		},
		"item": {"self": "/items/{id}"},
	})
	if !assert.NoError(t, err) {
		return
	}
	entity := &hyperdata.Entity{
		Type: "order", ID: "1",
		Relations: []hyperdata.Relation{
			{
				Name:        "items",
				Cardinality: hyperdata.ToMany,
				Targets:     []*hyperdata.Entity{{Type: "item", ID: "5"}},
			},
			{Name: "customer", Cardinality: hyperdata.ToOne},
		},
	}

	for _, convention := range []render.Convention{render.HAL, render.JSONGraph} {
		rendered, err := render.Render(convention, res, entity)
		if !assert.NoError(t, err) {
			continue
		}
		doc, err := Parse(rendered.MediaType, rendered.Body)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, []string{"items", "customer"}, doc.Relations(),
			"%v relations", convention)
		url, ok := doc.RelationURL("items")
		assert.True(t, ok, "%v items URL", convention)
		assert.Equal(t, "/orders/1/items", url, "%v items URL", convention)
	}
}
