// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

// Field is one named attribute.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered mapping of field name to value.  Unlike a Go
// map it remembers insertion order, which both document builders rely
// on for deterministic output.  The zero value is an empty mapping
// ready to use.
type Fields struct {
	fields []Field
}

// NewFields builds a mapping from a list of fields, keeping order.
func NewFields(fields ...Field) Fields {
	f := Fields{}
	for _, field := range fields {
		f.Set(field.Name, field.Value)
	}
	return f
}

// Set adds a field at the end of the mapping, or replaces the value
// in place if the name is already present.
func (f *Fields) Set(name string, value Value) {
	for i, field := range f.fields {
		if field.Name == name {
			f.fields[i].Value = value
			return
		}
	}
	f.fields = append(f.fields, Field{Name: name, Value: value})
}

// Get looks a field up by name.
func (f Fields) Get(name string) (Value, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f.fields) }

// Names returns the field names in insertion order.
func (f Fields) Names() []string {
	names := make([]string, len(f.fields))
	for i, field := range f.fields {
		names[i] = field.Name
	}
	return names
}

// Each calls fn once per field, in insertion order.
func (f Fields) Each(fn func(name string, value Value)) {
	for _, field := range f.fields {
		fn(field.Name, field.Value)
	}
}

// Clone returns a shallow copy whose field slice is independent of
// the original, so a caller can Set without aliasing.
func (f Fields) Clone() Fields {
	out := Fields{fields: make([]Field, len(f.fields))}
	copy(out.fields, f.fields)
	return out
}

// MarshalJSON serializes the mapping as a JSON object in insertion
// order.
func (f Fields) MarshalJSON() ([]byte, error) {
	return f.appendJSON(nil)
}

func (f Fields) appendJSON(buf []byte) ([]byte, error) {
	var err error
	buf = append(buf, '{')
	for i, field := range f.fields {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSONString(buf, field.Name)
		buf = append(buf, ':')
		buf, err = field.Value.appendJSON(buf)
		if err != nil {
			return nil, err
		}
	}
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON parses a JSON object preserving the order its members
// appear in the document.
func (f *Fields) UnmarshalJSON(in []byte) error {
	dec := newOrderedDecoder(in)
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	value, err := decodeValueFrom(dec, tok)
	if err != nil {
		return err
	}
	m, ok := value.MappingVal()
	if !ok {
		return errNotAnObject
	}
	*f = m
	return nil
}
