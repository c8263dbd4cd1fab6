// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"maps"
	"slices"
	"strconv"

	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	BoolKind               // true, false
	NumberKind             // number
	StringKind             // string
	ArrayKind              // [ ... ]
	ObjectKind             // { ... }
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid kind"
	}
	return kindStr[k]
}

// A Value is a parsed JSON value. The concrete type is one of Null, Bool,
// Number, String, Array, or Object.
type Value interface {
	Kind() Kind

	isValue()
}

// Null is the JSON null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// A Bool is a Boolean constant, true or false.
type Bool bool

// The Boolean constants.
const (
	True  = Bool(true)
	False = Bool(false)
)

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// A Number is a numeric value. All numbers are stored as float64, whether or
// not the source literal had a fraction or exponent.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// A String is a string value with its escapes decoded.
//
// A String parsed from input that contained no escape sequences shares
// storage with the input text.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// An Object is a collection of key-value members. Keys are unique; when the
// input repeats a key, the last occurrence wins. Iteration order is not
// related to the order of members in the input.
type Object map[string]Value

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Dump renders a debugging representation of v, for example:
//
//	Object({"id": Number(7), "tags": Array([String("a"), Null])})
//
// Object members are listed in key order, so the result is deterministic.
// The output is not JSON.
func Dump(v Value) string { return string(appendDump(nil, v)) }

func appendDump(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case nil:
		return append(buf, "<nil>"...)
	case Null:
		return append(buf, "Null"...)
	case Bool:
		if t {
			return append(buf, "True"...)
		}
		return append(buf, "False"...)
	case Number:
		buf = append(buf, "Number("...)
		buf = strconv.AppendFloat(buf, float64(t), 'g', -1, 64)
		return append(buf, ')')
	case String:
		buf = append(buf, "String("...)
		buf = escape.AppendQuote(buf, mem.S(string(t)))
		return append(buf, ')')
	case Array:
		buf = append(buf, "Array(["...)
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = appendDump(buf, elt)
		}
		return append(buf, "])"...)
	case Object:
		buf = append(buf, "Object({"...)
		for i, key := range slices.Sorted(maps.Keys(t)) {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = escape.AppendQuote(buf, mem.S(key))
			buf = append(buf, ": "...)
			buf = appendDump(buf, t[key])
		}
		return append(buf, "})"...)
	default:
		panic("unknown value type")
	}
}
