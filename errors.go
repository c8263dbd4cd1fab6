// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// ErrorKind classifies the reason a parse failed. ErrorKind values satisfy
// the error interface, and a *ParseError unwraps to its kind, so
//
//	errors.Is(err, jparse.MissingClosing)
//
// reports whether err is a parse error of that kind.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	NotFound       ErrorKind = iota // no value was found in the input
	UnexpectedChar                  // a required character was absent or invalid
	MissingClosing                  // an opening ", [, or { was not closed
	InvalidNumber                   // a malformed or unrepresentable number
	TooDeep                         // arrays and objects nested too deeply
)

var errorKindStr = [...]struct{ text, title string }{
	NotFound:       {"no value found", "No Value Found"},
	UnexpectedChar: {"unexpected character", "Unexpected Character"},
	MissingClosing: {"missing closing delimiter", "Missing Closing"},
	InvalidNumber:  {"invalid number", "Invalid Number"},
	TooDeep:        {"nesting too deep", "Nesting Too Deep"},
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string {
	if int(k) >= len(errorKindStr) {
		return "unknown error"
	}
	return errorKindStr[k].text
}

// Title returns a capitalized label for k, as used in diagnostics.
func (k ErrorKind) Title() string {
	if int(k) >= len(errorKindStr) {
		return "Unknown Error"
	}
	return errorKindStr[k].title
}

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind ErrorKind

	// Remaining is the number of bytes of input that remained unconsumed at
	// the point of failure. The offset of the failure in the input text is
	// len(text) - Remaining.
	Remaining int

	Offset   int     // byte offset of the failure, 0-based
	Location LineCol // line and column of Offset
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Kind == NotFound {
		return e.Kind.Error()
	}
	return fmt.Sprintf("at %s: %v", e.Location, e.Kind)
}

// Unwrap supports error wrapping. It returns the kind of e.
func (e *ParseError) Unwrap() error { return e.Kind }

// errNotFound is the soft failure returned by a grammar rule that does not
// apply at the current position. It never escapes the package.
var errNotFound = &ParseError{Kind: NotFound}

// fail returns a hard parse failure of the given kind located at the front
// of rest, the unconsumed remainder of the input.
func fail(kind ErrorKind, rest string) error {
	return &ParseError{Kind: kind, Remaining: len(rest)}
}
