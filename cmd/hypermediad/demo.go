// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/memstore"
	"github.com/isra-skyler/laravel-austin/resolver"
)

// demoTemplates is the built-in routing table used when no -routes
// file is given.
func demoTemplates() resolver.Templates {
	return resolver.Templates{
		"order": {
			"self":     "/orders/{id}",
			"items":    "/orders/{id}/items",
			"customer": "/orders/{id}/customer",
		},
		"item": {
			"self": "/items/{id}",
		},
		"customer": {
			"self":   "/customers/{id}",
			"orders": "/customers/{id}/orders",
		},
	}
}

// seedDemo loads a small catalog: one customer, two orders, three
// items.
func seedDemo(store *memstore.Store) error {
	attrs := func(fields ...hyperdata.Field) hyperdata.Fields {
		return hyperdata.NewFields(fields...)
	}
	field := func(name string, value hyperdata.Value) hyperdata.Field {
		return hyperdata.Field{Name: name, Value: value}
	}

	store.Put("customer", "7", attrs(
		field("name", hyperdata.StringValue("Ada Lovelace")),
		field("tier", hyperdata.StringValue("gold")),
	))
	store.Put("item", "3", attrs(
		field("sku", hyperdata.StringValue("TEA-EARLGREY")),
		field("qty", hyperdata.IntValue(1)),
	))
	store.Put("item", "5", attrs(
		field("sku", hyperdata.StringValue("TEA-ASSAM")),
		field("qty", hyperdata.IntValue(2)),
	))
	store.Put("item", "8", attrs(
		field("sku", hyperdata.StringValue("MUG-LARGE")),
		field("qty", hyperdata.IntValue(1)),
	))
	store.Put("order", "1", attrs(
		field("total", hyperdata.IntValue(42)),
		field("status", hyperdata.StringValue("shipped")),
	))
	store.Put("order", "2", attrs(
		field("total", hyperdata.IntValue(17)),
		field("status", hyperdata.StringValue("open")),
	))

	item := func(id string) memstore.Ref {
		return memstore.Ref{Type: "item", ID: id}
	}
	steps := []error{
		store.Relate("order", "1", "items", hyperdata.ToMany, item("5"), item("3")),
		store.Relate("order", "1", "customer", hyperdata.ToOne,
			memstore.Ref{Type: "customer", ID: "7"}),
		store.Relate("order", "2", "items", hyperdata.ToMany, item("8")),
		store.Relate("order", "2", "customer", hyperdata.ToOne,
			memstore.Ref{Type: "customer", ID: "7"}),
		store.Relate("customer", "7", "orders", hyperdata.ToMany,
			memstore.Ref{Type: "order", ID: "1"},
			memstore.Ref{Type: "order", ID: "2"}),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}
