// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/google/go-cmp/cmp"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"FirstLine", "[1,]", `
----

[1,]
   ^
   |
   |
Error: Unexpected Character on Line 1 Char 3
`},
		{"LaterLine", `{
  "name": "alpha",
  "size": 12.,
  "tags": []
}`, `
------------------
  "name": "alpha",
  "size": 12.,
             ^
             |
             |
Error: Invalid Number on Line 3 Char 13
`},
		{"EndOfInput", "[1,\n 2", `
---
[1,
 2
  ^
  |
  |
Error: Missing Closing on Line 2 Char 2
`},
		{"Tabs", "{\n\t\"a\" 1\n}", `
------
{
	"a" 1
	    ^
	    |
	    |
Error: Unexpected Character on Line 2 Char 5
`},
		{"CRLF", "[1,\r\n]", `
---
[1,
]
^
|
|
Error: Unexpected Character on Line 2 Char 0
`},
		{"Wide", "[\"\u00e9\u00e9\", x]", "\n" +
			"-----------\n" +
			"\n" +
			"[\"\u00e9\u00e9\", x]\n" +
			"       ^\n" +
			"       |\n" +
			"       |\n" +
			"Error: Unexpected Character on Line 1 Char 9\n"},
		{"Unterminated", `"abc`, `
----

"abc
 ^
 |
 |
Error: Missing Closing on Line 1 Char 1
`},
		{"NotFound", "  \n ", `
Error: No Value Found
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jparse.Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse %#q: got nil, want error", tc.input)
			}
			d := jparse.Diagnose(tc.input, err)
			if d == nil {
				t.Fatalf("Diagnose %v: got nil", err)
			}
			want := strings.TrimPrefix(tc.want, "\n")
			if diff := cmp.Diff(want, d.String()); diff != "" {
				t.Errorf("Diagnose %#q: (-want, +got)\n%s", tc.input, diff)
			}

			var sb strings.Builder
			if n, err := d.WriteTo(&sb); err != nil {
				t.Errorf("WriteTo: unexpected error: %v", err)
			} else if n != int64(len(want)) || sb.String() != want {
				t.Errorf("WriteTo: wrote %d bytes %q, want %q", n, sb.String(), want)
			}
		})
	}
}

func TestDiagnoseFile(t *testing.T) {
	input, err := os.ReadFile("testdata/broken.json")
	if err != nil {
		t.Fatalf("Reading test input: %v", err)
	}
	_, err = jparse.ParseBytes(input)
	if err == nil {
		t.Fatal("Parse: got nil, want error")
	}

	// Diagnostics survive wrapping.
	err = fmt.Errorf("load broken.json: %w", err)
	d := jparse.Diagnose(string(input), err)
	if d == nil {
		t.Fatalf("Diagnose %v: got nil", err)
	}
	want := &jparse.Diagnostic{
		Kind:     jparse.UnexpectedChar,
		Location: jparse.LineCol{Line: 5, Column: 37},
		Prev:     `    {"episode": 1, "title": "Departure"},`,
		Line:     `    {"episode": 2, "title": "Steppe",}`,
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("Diagnose (-want, +got)\n%s", diff)
	}
}

func TestDiagnoseOther(t *testing.T) {
	if d := jparse.Diagnose("[]", errors.New("bogus")); d != nil {
		t.Errorf("Diagnose: got %+v, want nil", d)
	}
	if d := jparse.Diagnose("[]", nil); d != nil {
		t.Errorf("Diagnose: got %+v, want nil", d)
	}
}

func TestLocate(t *testing.T) {
	const text = "ab\ncd\n"
	tests := []struct {
		offset int
		want   string
	}{
		{-1, "1:0"},
		{0, "1:0"},
		{1, "1:1"},
		{2, "1:2"}, // the newline ends line 1
		{3, "2:0"},
		{5, "2:2"},
		{6, "3:0"},
		{99, "3:0"},
	}
	for _, tc := range tests {
		if got := jparse.Locate(text, tc.offset).String(); got != tc.want {
			t.Errorf("Locate(%q, %d): got %s, want %s", text, tc.offset, got, tc.want)
		}
	}
	if got := jparse.Locate("", 0); got != (jparse.LineCol{Line: 1}) {
		t.Errorf("Locate empty: got %v, want 1:0", got)
	}
}
