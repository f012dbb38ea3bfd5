// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package render

import (
	"fmt"

	"github.com/isra-skyler/laravel-austin/hyperdata"
	"github.com/isra-skyler/laravel-austin/resolver"
)

// halBuilder serializes entity graphs into HAL documents: the
// entity's attributes as top-level fields, a "_links" object keyed by
// relation name plus the mandatory "self", and an optional
// "_embedded" object for relations whose targets are inlined.
type halBuilder struct {
	res   *resolver.Resolver
	depth int
}

func (b *halBuilder) Build(entity *hyperdata.Entity) (hyperdata.Document, error) {
	body, err := b.buildOne(entity, b.depth)
	if err != nil {
		return hyperdata.Document{}, err
	}
	return hyperdata.Document{MediaType: hyperdata.HALMediaType, Body: body}, nil
}

// buildOne renders a single entity.  Emission order is fixed:
// attributes in insertion order, then "_links", then "_embedded".
// At depth 0 the "_embedded" section is omitted entirely, so embedded
// documents never carry further embedded documents.
func (b *halBuilder) buildOne(entity *hyperdata.Entity, depth int) ([]byte, error) {
	if err := validateRelations(entity); err != nil {
		return nil, err
	}

	doc := newObject()
	var attrErr error
	entity.Attributes.Each(func(name string, value hyperdata.Value) {
		if attrErr != nil {
			return
		}
		raw, err := value.MarshalJSON()
		if err != nil {
			attrErr = err
			return
		}
		doc.member(name, raw)
	})
	if attrErr != nil {
		return nil, attrErr
	}

	// "_links" always carries "self" first, then one entry per
	// relation in insertion order.  A to-many relation gets a
	// single link to its collection endpoint, not a link per
	// target: the links section models relation types, not
	// instances.
	links := newObject()
	selfURL, err := b.res.Resolve(entity.Type, entity.ID, resolver.Self)
	if err != nil {
		return nil, err
	}
	links.member("self", href(selfURL))
	for _, rel := range entity.Relations {
		url, err := b.res.Resolve(entity.Type, entity.ID, rel.Name)
		if err != nil {
			return nil, err
		}
		links.member(rel.Name, href(url))
	}
	doc.member("_links", links.bytes())

	if depth > 0 {
		embedded := newObject()
		for _, rel := range entity.Relations {
			if !rel.Embed {
				continue
			}
			switch rel.Cardinality {
			case hyperdata.ToMany:
				items := make([][]byte, len(rel.Targets))
				for i, target := range rel.Targets {
					items[i], err = b.buildOne(target, depth-1)
					if err != nil {
						return nil, err
					}
				}
				embedded.member(rel.Name, array(items))
			case hyperdata.ToOne:
				// "no related resource yet" is a valid
				// state; it just contributes nothing here.
				if len(rel.Targets) == 0 {
					continue
				}
				item, err := b.buildOne(rel.Targets[0], depth-1)
				if err != nil {
					return nil, err
				}
				embedded.member(rel.Name, item)
			}
		}
		if embedded.members > 0 {
			doc.member("_embedded", embedded.bytes())
		}
	}

	return doc.bytes(), nil
}

// BuildRelated renders a relation endpoint: the single target of a
// to-one relation, or a collection document embedding every target of
// a to-many relation under the relation's name.
func (b *halBuilder) BuildRelated(entity *hyperdata.Entity, relation string) (hyperdata.Document, error) {
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
	links.member("self", href(selfURL))
	doc.member("_links", links.bytes())
	items := make([][]byte, len(rel.Targets))
	for i, target := range rel.Targets {
		items[i], err = b.buildOne(target, b.depth-1)
		if err != nil {
			return hyperdata.Document{}, err
		}
	}
	embedded := newObject()
	embedded.member(rel.Name, array(items))
	doc.member("_embedded", embedded.bytes())
	return hyperdata.Document{MediaType: hyperdata.HALMediaType, Body: doc.bytes()}, nil
}
