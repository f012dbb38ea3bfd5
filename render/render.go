// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package render turns an entity graph into a serialized hypermedia
// document in one of two conventions: HAL (application/hal+json) or
// the resource/relationship graph shape (application/vnd.api+json).
//
// Document construction is a pure, synchronous, in-memory
// transformation.  A builder never initiates I/O: it assumes the
// entity graph, including resolved targets for any embedded relation,
// is supplied already materialized.  Builders share no mutable state,
// so any number may run concurrently against the same Resolver.
package render

import (
	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/resolver"
)

// Convention selects one of the supported hypermedia conventions.
// It is a closed set: dispatch is by this enum, never by inspecting
// the graph.
type Convention int

const (
	// HAL is the link-annotation convention with "_links" and
	// "_embedded" sections.
	HAL Convention = iota

	// JSONGraph is the resource/relationship graph convention
	// with "data", "relationships", and "included" sections.
	JSONGraph
)

func (c Convention) String() string {
	switch c {
	case HAL:
		return "hal"
	case JSONGraph:
		return "jsongraph"
	}
	return "unknown"
}

// MediaType returns the wire media type documents of this convention
// are served with.
func (c Convention) MediaType() string {
	switch c {
	case HAL:
		return hyperdata.HALMediaType
	case JSONGraph:
		return hyperdata.GraphMediaType
	}
	return ""
}

// DefaultDepth is how many levels of related entities are embedded
// when no explicit depth is given.  Embedded representations never
// carry further embedded sections, which bounds document size on
// cyclic graphs.
const DefaultDepth = 1

// Builder serializes entity graphs into documents of one convention.
type Builder interface {
	// Build renders one entity, its links, and (one level of) its
	// embedded relations.
	Build(entity *hyperdata.Entity) (hyperdata.Document, error)

	// BuildRelated renders the named relation of an entity as its
	// own document: the target itself for a to-one relation, a
	// collection document for to-many.
	BuildRelated(entity *hyperdata.Entity, relation string) (hyperdata.Document, error)
}

// New returns a builder for the given convention, embedding one level
// of related entities.  An unknown convention returns
// hyperdata.ErrUnsupportedConvention.
func New(c Convention, res *resolver.Resolver) (Builder, error) {
	return NewWithDepth(c, res, DefaultDepth)
}

// NewWithDepth is New with an explicit embedding depth.
func NewWithDepth(c Convention, res *resolver.Resolver, depth int) (Builder, error) {
	switch c {
	case HAL:
		return &halBuilder{res: res, depth: depth}, nil
	case JSONGraph:
		return &graphBuilder{res: res, depth: depth}, nil
	}
	return nil, hyperdata.ErrUnsupportedConvention{Convention: c.String()}
}

// Render is a convenience wrapper that builds one document with a
// one-shot builder.
func Render(c Convention, res *resolver.Resolver, entity *hyperdata.Entity) (hyperdata.Document, error) {
	b, err := New(c, res)
	if err != nil {
		return hyperdata.Document{}, err
	}
	return b.Build(entity)
}

// validateRelations runs the fail-fast graph checks common to both
// builders.
func validateRelations(entity *hyperdata.Entity) error {
	for _, rel := range entity.Relations {
		if err := rel.Validate(entity); err != nil {
			return err
		}
	}
	return nil
}
