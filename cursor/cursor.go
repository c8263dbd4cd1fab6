// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over parsed JSON values.
package cursor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jparse"
)

// Path returns the value of type T reached from v by following path, whose
// elements are as documented for Cursor.Down.
func Path[T jparse.Value](v jparse.Value, path ...any) (T, error) {
	var zero T
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return zero, err
	}
	if t, ok := c.Value().(T); ok {
		return t, nil
	}
	return zero, fmt.Errorf("value is %s, not %T", kindOf(c.Value()), zero)
}

// ParsePath splits a dotted selector like "items.0.name" into path elements
// suitable for Down. Components that parse as decimal integers become int
// offsets, and all others are object keys. An empty selector is an empty
// path.
func ParsePath(sel string) []any {
	if sel == "" {
		return nil
	}
	parts := strings.Split(sel, ".")
	path := make([]any, len(parts))
	for i, p := range parts {
		if z, err := strconv.Atoi(p); err == nil {
			path[i] = z
		} else {
			path[i] = p
		}
	}
	return path
}

// A Cursor records a path from an origin value down into its structure.
type Cursor struct {
	path []jparse.Value // path[0] is the origin
	err  error
}

// New constructs a Cursor positioned at origin.
func New(origin jparse.Value) *Cursor { return &Cursor{path: []jparse.Value{origin}} }

// Origin returns the value c was constructed with.
func (c *Cursor) Origin() jparse.Value { return c.path[0] }

// AtOrigin reports whether c is positioned at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.path) == 1 }

// Value returns the value at the current position of c.
func (c *Cursor) Value() jparse.Value { return c.path[len(c.path)-1] }

// Path returns the values from the origin to the current position, inclusive.
func (c *Cursor) Path() []jparse.Value { return slices.Clone(c.path) }

// Err returns the error from the most recent call to Down, or nil.
func (c *Cursor) Err() error { return c.err }

// Up moves c to the parent of its current position, if it has one, and
// returns c.
func (c *Cursor) Up() *Cursor {
	if !c.AtOrigin() {
		c.path = c.path[:len(c.path)-1]
	}
	return c
}

// Reset moves c back to its origin and clears its error.
func (c *Cursor) Reset() { c.path, c.err = c.path[:1], nil }

// Down follows path from the current position of c and returns c. Each
// element of path is one of:
//
//   - a string, which selects the member of an object with that key;
//   - an int, which selects an element of an array, where a negative index
//     counts back from the end (-1 is the last element);
//   - a func(jparse.Value) (jparse.Value, error), whose result is the next
//     position.
//
// Down stops at the first element that cannot be followed, leaving c at the
// last value reached, and records the reason; use Err to retrieve it.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	for _, elt := range path {
		next, err := step(c.Value(), elt)
		if err != nil {
			c.err = err
			break
		}
		c.path = append(c.path, next)
	}
	return c
}

// step returns the value selected from v by a single path element.
func step(v jparse.Value, elt any) (jparse.Value, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := v.(jparse.Object)
		if !ok {
			return nil, fmt.Errorf("cannot select key %q from %s", t, kindOf(v))
		}
		next, ok := obj[t]
		if !ok {
			return nil, fmt.Errorf("key %q not found", t)
		}
		return next, nil

	case int:
		arr, ok := v.(jparse.Array)
		if !ok {
			return nil, fmt.Errorf("cannot select index %d from %s", t, kindOf(v))
		}
		i := t
		if i < 0 {
			i += len(arr)
		}
		if i < 0 || i >= len(arr) {
			return nil, fmt.Errorf("index %d out of range for array of length %d", t, len(arr))
		}
		return arr[i], nil

	case func(jparse.Value) (jparse.Value, error):
		return t(v)

	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
}

func kindOf(v jparse.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
