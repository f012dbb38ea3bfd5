// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package render

import (
	"fmt"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/resolver"
)

// graphBuilder serializes entity graphs into the resource/relationship
// graph convention: a primary "data" resource object carrying type,
// id, attributes, and per-relation "relationships" entries (a
// "related" link plus resource identifiers), and a document-level
// "included" array of full representations for embedded targets,
// deduplicated by (type, id) across the whole document.
type graphBuilder struct {
	res   *resolver.Resolver
	depth int
}

func (b *graphBuilder) Build(entity *hyperdata.Entity) (hyperdata.Document, error) {
	seen := map[hyperdata.Identifier]bool{
		// The primary resource never repeats itself in
		// "included", even if a relation points back at it.
		entity.Identify(): true,
	}
	var included [][]byte

	data, err := b.resourceObject(entity, b.depth, seen, &included)
	if err != nil {
		return hyperdata.Document{}, err
	}

	doc := newObject()
	doc.member("data", data)
	if len(included) > 0 {
		doc.member("included", array(included))
	}
	return hyperdata.Document{MediaType: hyperdata.GraphMediaType, Body: doc.bytes()}, nil
}

// resourceObject renders one resource object with its relationships,
// collecting included representations along the way.  At depth 0
// nothing further is included, which is what keeps embedding to one
// level.
func (b *graphBuilder) resourceObject(entity *hyperdata.Entity, depth int, seen map[hyperdata.Identifier]bool, included *[][]byte) ([]byte, error) {
	if err := validateRelations(entity); err != nil {
		return nil, err
	}

	o := newObject()
	o.member("type", hyperdata.EncodeJSONString(entity.Type))
	o.member("id", hyperdata.EncodeJSONString(entity.ID))
	attrs, err := entity.Attributes.MarshalJSON()
	if err != nil {
		return nil, err
	}
	o.member("attributes", attrs)

	if len(entity.Relations) > 0 {
		relationships := newObject()
		for _, rel := range entity.Relations {
			entry, err := b.relationshipEntry(entity, rel)
			if err != nil {
				return nil, err
			}
			relationships.member(rel.Name, entry)

			if !rel.Embed || depth <= 0 {
				continue
			}
			for _, target := range rel.Targets {
				id := target.Identify()
				if seen[id] {
					// Already included once; later
					// references stay identifier-only.
					continue
				}
				seen[id] = true
				block, err := primaryBlock(target)
				if err != nil {
					return nil, err
				}
				*included = append(*included, block)
			}
		}
		o.member("relationships", relationships.bytes())
	}

	return o.bytes(), nil
}

// relationshipEntry renders the "links" + "data" pair for one
// relation.  A to-one relation with no target gets an explicit null;
// a to-many relation with no targets gets an empty array, never a
// missing key.
func (b *graphBuilder) relationshipEntry(entity *hyperdata.Entity, rel hyperdata.Relation) ([]byte, error) {
	relatedURL, err := b.res.Resolve(entity.Type, entity.ID, rel.Name)
	if err != nil {
		return nil, err
	}

	entry := newObject()
	links := newObject()
	links.member("related", hyperdata.EncodeJSONString(relatedURL))
	entry.member("links", links.bytes())

	switch rel.Cardinality {
	case hyperdata.ToOne:
		if len(rel.Targets) == 0 {
			entry.member("data", []byte("null"))
		} else {
			entry.member("data", identifier(rel.Targets[0]))
		}
	case hyperdata.ToMany:
		ids := make([][]byte, len(rel.Targets))
		for i, target := range rel.Targets {
			ids[i] = identifier(target)
		}
		entry.member("data", array(ids))
	}
	return entry.bytes(), nil
}

// BuildRelated renders a relation endpoint: the target's own document
// for to-one, or a collection whose "data" holds a full primary block
// per target for to-many.
func (b *graphBuilder) BuildRelated(entity *hyperdata.Entity, relation string) (hyperdata.Document, error) {
	rel, ok := entity.Relation(relation)
	if !ok {
		return hyperdata.Document{}, hyperdata.ErrNotFound{
			Err: fmt.Errorf("no relation %q on %s/%s", relation, entity.Type, entity.ID),
		}
	}
	if err := rel.Validate(entity); err != nil {
		return hyperdata.Document{}, err
	}

	if rel.Cardinality == hyperdata.ToOne {
		if len(rel.Targets) == 0 {
			return hyperdata.Document{}, hyperdata.ErrNotFound{
				Err: fmt.Errorf("relation %q of %s/%s has no target", relation, entity.Type, entity.ID),
			}
		}
		return b.Build(rel.Targets[0])
	}

	selfURL, err := b.res.Resolve(entity.Type, entity.ID, rel.Name)
	if err != nil {
		return hyperdata.Document{}, err
	}
	doc := newObject()
	links := newObject()
	links.member("self", hyperdata.EncodeJSONString(selfURL))
	doc.member("links", links.bytes())
	items := make([][]byte, len(rel.Targets))
	for i, target := range rel.Targets {
		items[i], err = primaryBlock(target)
		if err != nil {
			return hyperdata.Document{}, err
		}
	}
	doc.member("data", array(items))
	return hyperdata.Document{MediaType: hyperdata.GraphMediaType, Body: doc.bytes()}, nil
}

// identifier renders a (type, id) resource identifier object.
func identifier(entity *hyperdata.Entity) []byte {
	o := newObject()
	o.member("type", hyperdata.EncodeJSONString(entity.Type))
	o.member("id", hyperdata.EncodeJSONString(entity.ID))
	return o.bytes()
}

// primaryBlock renders a full representation without relationships:
// the shape "included" entries take.
func primaryBlock(entity *hyperdata.Entity) ([]byte, error) {
	o := newObject()
	o.member("type", hyperdata.EncodeJSONString(entity.Type))
	o.member("id", hyperdata.EncodeJSONString(entity.ID))
	attrs, err := entity.Attributes.MarshalJSON()
	if err != nil {
		return nil, err
	}
	o.member("attributes", attrs)
	return o.bytes(), nil
}
