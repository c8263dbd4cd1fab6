// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a strict JSON parser with source diagnostics.
//
// # Parsing
//
// Parse converts a complete JSON text into a Value, following the grammar of
// RFC 8259 for whitespace, strings, and numbers:
//
//	v, err := jparse.Parse(text)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Print(jparse.Dump(v))
//
// The concrete type of a Value is one of Null, Bool, Number, String, Array,
// or Object. All numbers are float64. Object keys are unique; if the input
// repeats a key, the last member with that key wins.
//
// Parsing stops at the first error. Only a single value is required: any text
// after the value and its trailing whitespace is ignored, unless the Parser
// is configured with RejectTrailingText. Use a Parser to set options:
//
//	var p jparse.Parser
//	p.RejectTrailingText(true)
//	p.SetMaxDepth(64)
//	v, err := p.Parse(text)
//
// # Errors
//
// A failed parse returns an error of concrete type *ParseError, giving the
// kind of failure and its location. Use errors.Is to check the kind:
//
//	if errors.Is(err, jparse.MissingClosing) {
//	   // ...
//	}
//
// The kinds are:
//
//	Kind           | Meaning
//	-------------- | -----------------------------------------------------
//	NotFound       | the input contains no recognizable value
//	UnexpectedChar | a required character is absent, or a byte is invalid
//	MissingClosing | an opening ", [, or { is not matched before the input
//	               | ends or where the closing delimiter is required
//	InvalidNumber  | a number is malformed or out of range for float64
//	TooDeep        | arrays and objects are nested beyond the depth limit
//
// # Diagnostics
//
// Diagnose maps a parse error back onto the text that produced it, for
// display to a human:
//
//	if d := jparse.Diagnose(text, err); d != nil {
//	   fmt.Print(d)
//	}
//
// The rendering shows the line containing the error and the line before it,
// a pointer to the column of the error, and a one-line summary.
//
// # Strings
//
// The escapes \" \\ \/ \b \f \n \r \t and \uXXXX are decoded, including
// UTF-16 surrogate pairs; an unpaired surrogate decodes to U+FFFD. A string
// with no escapes shares storage with the input text rather than being
// copied.
package jparse
