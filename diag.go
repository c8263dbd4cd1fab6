// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// A Diagnostic describes a parse failure in terms of the source text, for
// presentation to a human.
type Diagnostic struct {
	Kind     ErrorKind
	Location LineCol // the location of the failure
	Prev     string  // the text of the line before the failure, or ""
	Line     string  // the text of the line containing the failure
}

// Diagnose constructs a diagnostic for err, which must be a *ParseError
// reported from parsing text. If err does not wrap a *ParseError, Diagnose
// returns nil.
func Diagnose(text string, err error) *Diagnostic {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return nil
	}
	d := &Diagnostic{Kind: pe.Kind}
	if pe.Kind == NotFound {
		return d
	}
	d.Prev, d.Line, d.Location = lineAt(text, len(text)-pe.Remaining)
	d.Prev = strings.TrimSuffix(d.Prev, "\r")
	d.Line = strings.TrimSuffix(d.Line, "\r")
	return d
}

// String renders d as a multi-line message. The message shows the failing
// line and its predecessor, a pointer to the column of the failure, and a
// summary of the error:
//
//	------------------
//	  "name": "alpha",
//	  "size": 12.,
//	             ^
//	             |
//	             |
//	Error: Invalid Number on Line 3 Char 13
//
// A NotFound diagnostic has no location, and renders as a summary only.
func (d *Diagnostic) String() string {
	var sb strings.Builder
	if d.Kind == NotFound {
		fmt.Fprintf(&sb, "Error: %s\n", d.Kind.Title())
		return sb.String()
	}

	sb.WriteString(strings.Repeat("-", max(len(d.Prev), len(d.Line))))
	sb.WriteByte('\n')
	sb.WriteString(d.Prev)
	sb.WriteByte('\n')
	sb.WriteString(d.Line)
	sb.WriteByte('\n')

	pad := d.padding()
	for _, mark := range []string{"^", "|", "|"} {
		sb.WriteString(pad)
		sb.WriteString(mark)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Error: %s on Line %d Char %d\n",
		d.Kind.Title(), d.Location.Line, d.Location.Column)
	return sb.String()
}

// WriteTo writes the rendering of d to w. It implements io.WriterTo.
func (d *Diagnostic) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// padding returns the whitespace that aligns a marker under the column of
// the failure. Tabs in the line are copied so the marker lines up however
// the terminal expands them, and each rune occupies a single column.
func (d *Diagnostic) padding() string {
	prefix := d.Line[:min(d.Location.Column, len(d.Line))]
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	// Columns past the end of the line (such as a trimmed "\r") still count.
	sb.WriteString(strings.Repeat(" ", d.Location.Column-len(prefix)))
	return sb.String()
}
