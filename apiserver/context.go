// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package apiserver

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/render"
)

// context holds everything extracted from one request's URL: which
// entity is addressed, which of its relations (if a relation route
// matched), and the negotiated convention.
type context struct {
	EntityType  string
	EntityID    string
	Relation    string
	Convention  render.Convention
	QueryParams url.Values
}

// contextFor builds the context function for a route.  The entity
// type and relation are fixed per route; the id comes from the URL.
func (api *restAPI) contextFor(entityType, relation string) func(*http.Request) (*context, error) {
	return func(req *http.Request) (*context, error) {
		vars := mux.Vars(req)
		id, err := hyperdata.MaybeDecodeName(vars["id"])
		if err != nil {
			return nil, hyperdata.ErrBadRequest{Err: err}
		}
		return &context{
			EntityType:  entityType,
			EntityID:    id,
			Relation:    relation,
			QueryParams: req.URL.Query(),
		}, nil
	}
}

// Include returns the relation names the caller asked to have
// embedded, from an "include" query parameter holding a
// comma-separated list (repeatable).
func (ctx *context) Include() []string {
	var include []string
	for _, param := range ctx.QueryParams["include"] {
		for _, name := range strings.Split(param, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				include = append(include, name)
			}
		}
	}
	return include
}
