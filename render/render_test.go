// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package render

import (
	"testing"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/resolver"
	"github.com/stretchr/testify/assert"
)

// testResolver builds the routing table shared by the builder tests.
func testResolver(t *testing.T) *resolver.Resolver {
	res, err := resolver.New(resolver.Templates{
		"order": {
			"self":     "/orders/{id}",
			"items":    "/orders/{id}/items",
			"customer": "/orders/{id}/customer",
			"featured": "/orders/{id}/featured",
		},
		"item": {
			"self": "/items/{id}",
		},
		"customer": {
			"self":   "/customers/{id}",
			"orders": "/customers/{id}/orders",
		},
	})
	if err != nil {
		t.Fatalf("resolver.New() => error %v", err)
	}
	return res
}

func attrs(pairs ...interface{}) hyperdata.Fields {
	f := hyperdata.Fields{}
	for i := 0; i < len(pairs); i += 2 {
		f.Set(pairs[i].(string), pairs[i+1].(hyperdata.Value))
	}
	return f
}

// orderOne is the worked example: order/1 with total 42 and a
// to-many "items" relation targeting item/5 then item/3.
func orderOne(embed bool) *hyperdata.Entity {
	return &hyperdata.Entity{
		Type:       "order",
		ID:         "1",
		Attributes: attrs("total", hyperdata.IntValue(42)),
		Relations: []hyperdata.Relation{
			{
				Name:        "items",
				Cardinality: hyperdata.ToMany,
				Targets: []*hyperdata.Entity{
					{Type: "item", ID: "5", Attributes: attrs("qty", hyperdata.IntValue(2))},
					{Type: "item", ID: "3", Attributes: attrs("qty", hyperdata.IntValue(1))},
				},
				Embed: embed,
			},
		},
	}
}

func TestNewUnsupportedConvention(t *testing.T) {
	_, err := New(Convention(99), testResolver(t))
	_, ok := err.(hyperdata.ErrUnsupportedConvention)
	assert.True(t, ok, "expected ErrUnsupportedConvention, got %v", err)
}

func TestConventionMediaTypes(t *testing.T) {
	assert.Equal(t, hyperdata.HALMediaType, HAL.MediaType())
	assert.Equal(t, hyperdata.GraphMediaType, JSONGraph.MediaType())
}

func TestBuildIsIdempotent(t *testing.T) {
	res := testResolver(t)
	for _, convention := range []Convention{HAL, JSONGraph} {
		entity := orderOne(true)
		first, err := Render(convention, res, entity)
		if !assert.NoError(t, err) {
			continue
		}
		second, err := Render(convention, res, entity)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, first.Body, second.Body,
			"%v documents differ across identical builds", convention)
	}
}

func TestMalformedToOne(t *testing.T) {
	res := testResolver(t)
	entity := &hyperdata.Entity{
		Type: "order", ID: "1",
		Relations: []hyperdata.Relation{
			{
				Name:        "customer",
				Cardinality: hyperdata.ToOne,
				Targets: []*hyperdata.Entity{
					{Type: "customer", ID: "7"},
					{Type: "customer", ID: "8"},
				},
			},
		},
	}
	for _, convention := range []Convention{HAL, JSONGraph} {
		_, err := Render(convention, res, entity)
		_, ok := err.(hyperdata.ErrMalformedGraph)
		assert.True(t, ok, "%v: expected ErrMalformedGraph, got %v", convention, err)
	}
}

func TestSelfRelationRejected(t *testing.T) {
	res := testResolver(t)
	entity := &hyperdata.Entity{
		Type: "order", ID: "1",
		Relations: []hyperdata.Relation{
			{Name: "self", Cardinality: hyperdata.ToOne},
		},
	}
	for _, convention := range []Convention{HAL, JSONGraph} {
		_, err := Render(convention, res, entity)
		_, ok := err.(hyperdata.ErrMalformedGraph)
		assert.True(t, ok, "%v: expected ErrMalformedGraph, got %v", convention, err)
	}
}

func TestUnresolvedRelationFailsBuild(t *testing.T) {
	res := testResolver(t)
	entity := &hyperdata.Entity{
		Type: "order", ID: "1",
		Relations: []hyperdata.Relation{
			{Name: "warehouse", Cardinality: hyperdata.ToOne},
		},
	}
	for _, convention := range []Convention{HAL, JSONGraph} {
		_, err := Render(convention, res, entity)
		_, ok := err.(hyperdata.ErrUnresolvedRelation)
		assert.True(t, ok, "%v: expected ErrUnresolvedRelation, got %v", convention, err)
	}
}
