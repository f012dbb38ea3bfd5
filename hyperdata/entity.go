// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

// Cardinality says how many targets a relation may have.
type Cardinality int

const (
	// ToOne relations reference at most one target entity.
	ToOne Cardinality = iota

	// ToMany relations reference zero or more target entities in
	// order.
	ToMany
)

func (c Cardinality) String() string {
	switch c {
	case ToOne:
		return "to-one"
	case ToMany:
		return "to-many"
	}
	return "unknown"
}

// Entity is one domain object instance handed to a document builder.
// An entity graph is owned by the request that materialized it; the
// builders read it but never mutate or retain it.
type Entity struct {
	// Type identifies the resource kind, e.g. "order".
	Type string

	// ID is unique within Type.  (Type, ID) identifies the entity
	// for the lifetime of one document; the same pair appearing
	// twice must carry identical attributes.
	ID string

	// Attributes holds the entity's payload data in insertion
	// order.  May be empty.
	Attributes Fields

	// Relations lists the entity's relationships in insertion
	// order, which fixes link emission order in both conventions.
	Relations []Relation
}

// Relation describes one relationship from a source entity to zero,
// one, or many targets.  It lives only for the duration of building
// one response document.
type Relation struct {
	// Name is unique among the source entity's relations.  "self"
	// is reserved and rejected.
	Name string

	// Cardinality is ToOne or ToMany.
	Cardinality Cardinality

	// Targets holds the resolved target entities, in order.  May
	// be empty; must hold at most one entry for ToOne.
	Targets []*Entity

	// Embed asks for the targets' full representations to be
	// inlined (HAL "_embedded") or included (graph "included")
	// rather than linked only.
	Embed bool
}

// Validate checks the relation against the source entity that carries
// it.  A ToOne relation with multiple targets is a caller defect and
// fails fast rather than silently truncating; an empty target list is
// always legitimate, embed flag or not.
func (r Relation) Validate(source *Entity) error {
	if r.Name == "self" {
		return ErrMalformedGraph{
			EntityType: source.Type,
			EntityID:   source.ID,
			Relation:   r.Name,
			Reason:     `"self" is a reserved relation name`,
		}
	}
	if r.Cardinality == ToOne && len(r.Targets) > 1 {
		return ErrMalformedGraph{
			EntityType: source.Type,
			EntityID:   source.ID,
			Relation:   r.Name,
			Reason:     "to-one relation has multiple targets",
		}
	}
	return nil
}

// Identifier is a (type, id) resource identifier referencing an
// entity without inlining its attributes.
type Identifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Identify returns the entity's resource identifier.
func (e *Entity) Identify() Identifier {
	return Identifier{Type: e.Type, ID: e.ID}
}

// Relation finds a relation by name.
func (e *Entity) Relation(name string) (Relation, bool) {
	for _, rel := range e.Relations {
		if rel.Name == name {
			return rel, true
		}
	}
	return Relation{}, false
}
