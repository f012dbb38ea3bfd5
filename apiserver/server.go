// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package apiserver exposes stored entities as hypermedia resources.
// Routes are generated from the same link-template table the resolver
// resolves against, so a URL the engine emits is always a URL the
// server routes: the simple {id} form is valid both as an RFC 6570
// template and as a gorilla/mux path variable.
package apiserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/render"
	"github.com/isra-skyler/laravel-austin/resolver"
)

// Store is the data-access collaborator: it materializes a fresh,
// request-owned entity graph, with the named relations marked for
// embedding.  Fetch failures must surface here, before the builders
// run; the builders themselves never do I/O.
type Store interface {
	Graph(entityType, id string, include ...string) (*hyperdata.Entity, error)
}

// NewRouter creates an HTTP handler serving every entity type in the
// resolver's template table.  For more control, create a mux.Router
// and call PopulateRouter instead.
func NewRouter(store Store, res *resolver.Resolver) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store, res)
	return r
}

// PopulateRouter adds entity and relation routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the hypermedia API under a subpath.
func PopulateRouter(r *mux.Router, store Store, res *resolver.Resolver) {
	api := &restAPI{Store: store, Resolver: res}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the hypermedia API.
type restAPI struct {
	Store    Store
	Resolver *resolver.Resolver
}

// PopulateRouter registers one route per "self" template and one per
// relation template.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	for _, entityType := range api.Resolver.EntityTypes() {
		pattern, _ := api.Resolver.Pattern(entityType, resolver.Self)
		r.Path(pattern).Name(entityType).Handler(&resourceHandler{
			Context: api.contextFor(entityType, ""),
			Get:     api.EntityGet,
		})
		for _, relation := range api.Resolver.Relations(entityType) {
			pattern, _ := api.Resolver.Pattern(entityType, relation)
			r.Path(pattern).Name(entityType + "." + relation).Handler(&resourceHandler{
				Context: api.contextFor(entityType, relation),
				Get:     api.RelatedGet,
			})
		}
	}
}

// EntityGet serves an entity's own document.  Relations listed in the
// "include" query parameter are embedded; the rest appear link-only.
func (api *restAPI) EntityGet(ctx *context) (hyperdata.Document, error) {
	entity, err := api.Store.Graph(ctx.EntityType, ctx.EntityID, ctx.Include()...)
	if err != nil {
		return hyperdata.Document{}, err
	}
	builder, err := render.New(ctx.Convention, api.Resolver)
	if err != nil {
		return hyperdata.Document{}, err
	}
	return builder.Build(entity)
}

// RelatedGet serves a relation endpoint: the related entity itself
// for to-one relations, a collection document for to-many.
func (api *restAPI) RelatedGet(ctx *context) (hyperdata.Document, error) {
	entity, err := api.Store.Graph(ctx.EntityType, ctx.EntityID, ctx.Relation)
	if err != nil {
		return hyperdata.Document{}, err
	}
	builder, err := render.New(ctx.Convention, api.Resolver)
	if err != nil {
		return hyperdata.Document{}, err
	}
	return builder.BuildRelated(entity, ctx.Relation)
}
