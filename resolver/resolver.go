// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package resolver derives canonical URLs for resources and their
// relationships from a static routing-template table.  The table is
// loaded once at process startup, is immutable afterwards, and may be
// read concurrently without synchronization.  Resolution is a pure
// function of (entity type, entity id, relation name): no network, no
// I/O, same inputs, same URL.
package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/jtacoma/uritemplates"
)

// Self is the reserved pseudo-relation naming an entity's own URL.
const Self = "self"

// Templates maps entity type to a map of relation name (or "self") to
// an RFC 6570 URI template with an {id} parameter, e.g.
//
//     Templates{
//         "order": {
//             "self":  "/orders/{id}",
//             "items": "/orders/{id}/items",
//         },
//     }
type Templates map[string]map[string]string

// Resolver resolves (entity type, entity id, relation) triples into
// URL strings.  Construct one with New and share it freely.
type Resolver struct {
	patterns Templates
	compiled map[string]map[string]*uritemplates.UriTemplate
}

// New compiles a template table into a Resolver.  Every entity type
// must carry a "self" entry, every template must parse as a URI
// template containing an {id} parameter, and no other relation may be
// named "self" (enforced by construction: the key is the relation
// name, so the reserved key is the self link).
func New(templates Templates) (*Resolver, error) {
	r := &Resolver{
		patterns: Templates{},
		compiled: map[string]map[string]*uritemplates.UriTemplate{},
	}
	for entityType, relations := range templates {
		if _, ok := relations[Self]; !ok {
			return nil, fmt.Errorf("link templates for type %q lack a %q entry", entityType, Self)
		}
		r.patterns[entityType] = map[string]string{}
		r.compiled[entityType] = map[string]*uritemplates.UriTemplate{}
		for relation, pattern := range relations {
			if !strings.Contains(pattern, "{id}") {
				return nil, fmt.Errorf("link template %q for %s/%s lacks an {id} parameter",
					pattern, entityType, relation)
			}
			tmpl, err := uritemplates.Parse(pattern)
			if err != nil {
				return nil, fmt.Errorf("link template %q for %s/%s: %v",
					pattern, entityType, relation, err)
			}
			r.patterns[entityType][relation] = pattern
			r.compiled[entityType][relation] = tmpl
		}
	}
	return r, nil
}

// Resolve returns the canonical URL for an entity (relation == "self")
// or for one of its relations.  The entity id is substituted into the
// {id} parameter, escaped with hyperdata.MaybeEncodeName so the URL
// decodes back to the same id on the serving side.  A missing table
// entry returns hyperdata.ErrUnresolvedRelation, which callers should
// treat as fatal to the current response: it means the routing table is
// incomplete.
func (r *Resolver) Resolve(entityType, entityID, relation string) (string, error) {
	relations, ok := r.compiled[entityType]
	if !ok {
		return "", hyperdata.ErrUnresolvedRelation{EntityType: entityType, Relation: relation}
	}
	tmpl, ok := relations[relation]
	if !ok {
		return "", hyperdata.ErrUnresolvedRelation{EntityType: entityType, Relation: relation}
	}
	return tmpl.Expand(map[string]interface{}{"id": hyperdata.MaybeEncodeName(entityID)})
}

// Pattern returns the raw template string for an entry, if present.
// The apiserver package registers mux routes straight off these
// patterns; the simple {id} form is valid in both syntaxes.
func (r *Resolver) Pattern(entityType, relation string) (string, bool) {
	relations, ok := r.patterns[entityType]
	if !ok {
		return "", false
	}
	pattern, ok := relations[relation]
	return pattern, ok
}

// EntityTypes returns the configured entity types, sorted.
func (r *Resolver) EntityTypes() []string {
	types := make([]string, 0, len(r.patterns))
	for entityType := range r.patterns {
		types = append(types, entityType)
	}
	sort.Strings(types)
	return types
}

// Relations returns the configured relation names for a type, sorted,
// excluding "self".
func (r *Resolver) Relations(entityType string) []string {
	relations := make([]string, 0, len(r.patterns[entityType]))
	for relation := range r.patterns[entityType] {
		if relation == Self {
			continue
		}
		relations = append(relations, relation)
	}
	sort.Strings(relations)
	return relations
}
