// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

// Package memstore provides an in-process, in-memory entity store.
// There is no persistence here; persistence and querying belong to
// whatever real data-access layer fronts the engine in production.
// The whole store sits behind a single mutex, trading throughput for
// correctness.
//
// This is mostly intended as a simple reference collaborator that can
// materialize request-owned entity graphs for the document builders,
// including in-process testing of the higher layers.
package memstore

import (
	"fmt"
	"sync"

	"github.com/isra-skyler/laravel-austin/hyperdata"
)

// Ref names a stored entity by type and id.
type Ref struct {
	Type string
	ID   string
}

type storedRelation struct {
	name        string
	cardinality hyperdata.Cardinality
	targets     []Ref
}

type record struct {
	attrs     hyperdata.Fields
	relations []storedRelation
}

// Store holds entities and their relationships.
type Store struct {
	mu       sync.RWMutex
	entities map[Ref]*record
}

// New creates an empty store.
func New() *Store {
	return &Store{entities: map[Ref]*record{}}
}

// Put stores (or replaces) an entity's attributes.
func (s *Store) Put(entityType, id string, attrs hyperdata.Fields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := Ref{Type: entityType, ID: id}
	rec, ok := s.entities[ref]
	if !ok {
		rec = &record{}
		s.entities[ref] = rec
	}
	rec.attrs = attrs.Clone()
}

// Relate declares (or replaces) a relationship on a source entity.
// Both the source and every target must already exist; "self" is
// reserved and rejected.
func (s *Store) Relate(entityType, id, relation string, cardinality hyperdata.Cardinality, targets ...Ref) error {
	if relation == "self" {
		return fmt.Errorf(`"self" is a reserved relation name`)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	source := Ref{Type: entityType, ID: id}
	rec, ok := s.entities[source]
	if !ok {
		return fmt.Errorf("no such entity %s/%s", entityType, id)
	}
	for _, target := range targets {
		if _, ok := s.entities[target]; !ok {
			return fmt.Errorf("no such entity %s/%s", target.Type, target.ID)
		}
	}

	stored := storedRelation{
		name:        relation,
		cardinality: cardinality,
		targets:     append([]Ref{}, targets...),
	}
	for i, existing := range rec.relations {
		if existing.name == relation {
			rec.relations[i] = stored
			return nil
		}
	}
	rec.relations = append(rec.relations, stored)
	return nil
}

// Graph materializes a fresh, request-owned entity graph rooted at
// one entity.  Relations named in include are marked for embedding
// and their targets resolved one level deep; everything else is
// link-only.  The returned graph shares nothing mutable with the
// store, so the caller may hand it to a builder without locking.
func (s *Store) Graph(entityType, id string, include ...string) (*hyperdata.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref := Ref{Type: entityType, ID: id}
	rec, ok := s.entities[ref]
	if !ok {
		return nil, hyperdata.ErrNotFound{
			Err: fmt.Errorf("no such entity %s/%s", entityType, id),
		}
	}

	embed := map[string]bool{}
	for _, name := range include {
		embed[name] = true
	}

	entity := &hyperdata.Entity{
		Type:       ref.Type,
		ID:         ref.ID,
		Attributes: rec.attrs.Clone(),
	}
	for _, stored := range rec.relations {
		rel := hyperdata.Relation{
			Name:        stored.name,
			Cardinality: stored.cardinality,
			Embed:       embed[stored.name],
		}
		for _, targetRef := range stored.targets {
			rel.Targets = append(rel.Targets, s.materializeTarget(targetRef))
		}
		entity.Relations = append(entity.Relations, rel)
	}
	return entity, nil
}

// materializeTarget builds a one-level representation of a related
// entity: attributes plus relation descriptors, but no further
// targets.  Callers must hold at least the read lock.
func (s *Store) materializeTarget(ref Ref) *hyperdata.Entity {
	entity := &hyperdata.Entity{Type: ref.Type, ID: ref.ID}
	rec, ok := s.entities[ref]
	if !ok {
		return entity
	}
	entity.Attributes = rec.attrs.Clone()
	for _, stored := range rec.relations {
		entity.Relations = append(entity.Relations, hyperdata.Relation{
			Name:        stored.name,
			Cardinality: stored.cardinality,
		})
	}
	return entity
}
