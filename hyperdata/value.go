// Copyright 2026 Isra Skyler.
// This software is released under an MIT/X11 open source license.

package hyperdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind enumerates the closed set of attribute value kinds.  There is
// deliberately no "anything" escape hatch: builders can only be
// deterministic if every value they see is one of these.
type Kind int

// The supported value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	Sequence
	Mapping
)

// Value is one attribute value: a tagged union over the kinds above.
// The zero value is JSON null.
type Value struct {
	kind Kind
	b    bool
	num  string
	str  string
	seq  []Value
	m    Fields
}

// NullValue returns the null value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// IntValue wraps an integer.
func IntValue(i int64) Value {
	return Value{kind: Number, num: strconv.FormatInt(i, 10)}
}

// FloatValue wraps a floating-point number.
func FloatValue(f float64) Value {
	return Value{kind: Number, num: strconv.FormatFloat(f, 'g', -1, 64)}
}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// SequenceValue wraps an ordered list of values.
func SequenceValue(vs ...Value) Value { return Value{kind: Sequence, seq: vs} }

// MappingValue wraps a nested ordered mapping.
func MappingValue(f Fields) Value { return Value{kind: Mapping, m: f} }

// Kind reports which kind of value this is.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean payload; false if the kind is not Bool.
func (v Value) BoolVal() bool { return v.kind == Bool && v.b }

// NumberText returns the number payload as its source text.
func (v Value) NumberText() string { return v.num }

// Float64 returns the number payload as a float64.
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, fmt.Errorf("value is not a number")
	}
	return strconv.ParseFloat(v.num, 64)
}

// StringVal returns the string payload and whether the kind is String.
func (v Value) StringVal() (string, bool) { return v.str, v.kind == String }

// SequenceVal returns the sequence payload; nil for other kinds.
func (v Value) SequenceVal() []Value {
	if v.kind != Sequence {
		return nil
	}
	return v.seq
}

// MappingVal returns the mapping payload and whether the kind is
// Mapping.
func (v Value) MappingVal() (Fields, bool) { return v.m, v.kind == Mapping }

// MarshalJSON serializes the value.  Numbers are written with the
// exact text they carry.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil)
}

func (v Value) appendJSON(buf []byte) ([]byte, error) {
	var err error
	switch v.kind {
	case Null:
		buf = append(buf, "null"...)
	case Bool:
		buf = strconv.AppendBool(buf, v.b)
	case Number:
		buf = append(buf, v.num...)
	case String:
		buf = appendJSONString(buf, v.str)
	case Sequence:
		buf = append(buf, '[')
		for i, item := range v.seq {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf, err = item.appendJSON(buf)
			if err != nil {
				return nil, err
			}
		}
		buf = append(buf, ']')
	case Mapping:
		buf, err = v.m.appendJSON(buf)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid value kind %d", v.kind)
	}
	return buf, nil
}

// UnmarshalJSON parses a value of any kind, preserving mapping member
// order and number text.
func (v *Value) UnmarshalJSON(in []byte) error {
	dec := newOrderedDecoder(in)
	parsed, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// newOrderedDecoder builds a json.Decoder configured for lossless
// number handling.  The stdlib token decoder is the one JSON reader
// available here that surfaces object members in document order.
func newOrderedDecoder(in []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(in))
	dec.UseNumber()
	return dec
}

// decodeValue consumes one complete JSON value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeValueFrom(dec, tok)
}

func decodeValueFrom(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return Value{kind: Number, num: t.String()}, nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			seq := []Value{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				seq = append(seq, item)
			}
			// closing ]
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return SequenceValue(seq...), nil
		case '{':
			fields, err := decodeFields(dec)
			if err != nil {
				return Value{}, err
			}
			return MappingValue(fields), nil
		}
	}
	return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

// decodeFields reads object members up to and including the closing
// brace; the opening brace must already be consumed.
func decodeFields(dec *json.Decoder) (Fields, error) {
	var fields Fields
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Fields{}, err
		}
		name, ok := tok.(string)
		if !ok {
			return Fields{}, fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Fields{}, err
		}
		fields.Set(name, value)
	}
	if _, err := dec.Token(); err != nil {
		return Fields{}, err
	}
	return fields, nil
}
