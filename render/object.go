// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package render

import (
	"github.com/isra-skyler/laravel-austin/hyperdata"
)

// object accumulates a JSON object whose members appear exactly in
// the order they are written.  Both builders construct their output
// through this instead of Go maps, which is what makes document bytes
// reproducible.
type object struct {
	buf     []byte
	members int
}

func newObject() *object {
	return &object{buf: []byte{'{'}}
}

// member appends one name/value member, where raw is already-valid
// JSON.
func (o *object) member(name string, raw []byte) {
	if o.members > 0 {
		o.buf = append(o.buf, ',')
	}
	o.buf = append(o.buf, hyperdata.EncodeJSONString(name)...)
	o.buf = append(o.buf, ':')
	o.buf = append(o.buf, raw...)
	o.members++
}

// bytes closes the object and returns it.
func (o *object) bytes() []byte {
	return append(o.buf, '}')
}

// array joins already-serialized JSON values into a JSON array.
func array(items [][]byte) []byte {
	buf := []byte{'['}
	for i, item := range items {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, item...)
	}
	return append(buf, ']')
}

// href wraps a resolved URL in the HAL link object shape.
func href(url string) []byte {
	o := newObject()
	o.member("href", hyperdata.EncodeJSONString(url))
	return o.bytes()
}
