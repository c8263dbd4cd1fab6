// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{" ", ""},
		{"\n", ""},
		{"\t", ""},
		{"\r", ""},
		{" \t\r\n x ", "x "},
		{"x", "x"},
		{"\v1", "\v1"},       // not JSON whitespace
		{"\u00a0", "\u00a0"}, // nor is NBSP
	}
	for _, tc := range tests {
		got := skipSpace(tc.input)
		if got != tc.want {
			t.Errorf("skipSpace(%q): got %q, want %q", tc.input, got, tc.want)
		}
		if again := skipSpace(got); again != got {
			t.Errorf("skipSpace(%q): not idempotent, got %q", got, again)
		}
	}
}

func TestSpaceComments(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{" x", "x"},
		{"// line\nx", "x"},
		{"// to the end", ""},
		{"/* block */x", "x"},
		{"/**/ /* a */\n\t// b\n  x y", "x y"},
		{"/* a * b / c */]", "]"},
		{"/* open", "/* open"},
		{"/*/ x", "/*/ x"},
		{"/ x", "/ x"},
		{"x // later", "x // later"},
	}
	jp := &parser{jwcc: true}
	sp := &parser{}
	for _, tc := range tests {
		if got := jp.space(tc.input); got != tc.want {
			t.Errorf("space(%q): got %q, want %q", tc.input, got, tc.want)
		}
		if got, want := sp.space(tc.input), skipSpace(tc.input); got != want {
			t.Errorf("space(%q) without comments: got %q, want %q", tc.input, got, want)
		}
	}
}

func TestJWCCRules(t *testing.T) {
	runRulesWith(t, parser{jwcc: true}, "element", (*parser).element, []ruleTest{
		{input: "/* a */ 1 // b", want: Number(1)},
		{input: "[1, 2,]", want: Array{Number(1), Number(2)}},
		{input: "[1, /* more */\n// later\n]", want: Array{Number(1)}},
		{input: `{"a": 1, /* c */ }`, want: Object{"a": Number(1)}},
		{input: `{/* k */ "a" /* c */ : /* v */ [true,], }`, want: Object{"a": Array{True}}},
		{input: "[1 /* x */, 2] tail", want: Array{Number(1), Number(2)}, rest: "tail"},

		{input: "[1,,]", fail: UnexpectedChar},
		{input: `{"a": 1,,}`, fail: UnexpectedChar},
		{input: "[1, /* x", fail: MissingClosing},
		{input: "// nothing", fail: NotFound},
	})

	// Without JWCC, comments and trailing commas are errors.
	runRuleTests(t, "element", (*parser).element, []ruleTest{
		{input: "[1, 2,]", fail: UnexpectedChar},
		{input: "/* a */ 1", fail: NotFound},
	})
}

type ruleFunc func(*parser, string) (Value, string, error)

type ruleTest struct {
	input string
	want  Value
	rest  string
	fail  ErrorKind // if want == nil
}

func runRuleTests(t *testing.T, name string, rule ruleFunc, tests []ruleTest) {
	t.Helper()
	runRulesWith(t, parser{}, name, rule, tests)
}

// runRulesWith runs each test on a fresh copy of base.
func runRulesWith(t *testing.T, base parser, name string, rule ruleFunc, tests []ruleTest) {
	t.Helper()
	if base.maxDepth == 0 {
		base.maxDepth = DefaultMaxDepth
	}
	for _, tc := range tests {
		p := base
		v, rest, err := rule(&p, tc.input)
		if tc.want == nil {
			pe, ok := err.(*ParseError)
			if !ok {
				t.Errorf("%s(%#q): got (%v, %v), want %v", name, tc.input, v, err, tc.fail)
			} else if pe.Kind != tc.fail {
				t.Errorf("%s(%#q): got error %v, want %v", name, tc.input, pe.Kind, tc.fail)
			} else if tc.fail == NotFound && err != errNotFound {
				t.Errorf("%s(%#q): soft failure is not the sentinel", name, tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s(%#q): unexpected error: %v", name, tc.input, err)
			continue
		}
		if diff := cmp.Diff(tc.want, v); diff != "" {
			t.Errorf("%s(%#q): value (-want, +got)\n%s", name, tc.input, diff)
		}
		if rest != tc.rest {
			t.Errorf("%s(%#q): rest is %q, want %q", name, tc.input, rest, tc.rest)
		}
	}
}

func TestLiterals(t *testing.T) {
	runRuleTests(t, "boolean", (*parser).boolean, []ruleTest{
		{input: "true", want: True},
		{input: "false", want: False},
		{input: "true, 1", want: True, rest: ", 1"},
		{input: "falsetto", want: False, rest: "tto"},
		{input: "tru", fail: NotFound},
		{input: " true", fail: NotFound},
		{input: "null", fail: NotFound},
	})
	runRuleTests(t, "null", (*parser).null, []ruleTest{
		{input: "null", want: Null{}},
		{input: "null]", want: Null{}, rest: "]"},
		{input: "nil", fail: NotFound},
		{input: "", fail: NotFound},
	})
}

func TestNumberRule(t *testing.T) {
	runRuleTests(t, "number", (*parser).number, []ruleTest{
		{input: "0", want: Number(0)},
		{input: "12.5e1]", want: Number(125), rest: "]"},
		{input: "-3,4", want: Number(-3), rest: ",4"},
		{input: "6 7", want: Number(6), rest: " 7"},
		{input: "2e-1}", want: Number(0.2), rest: "}"},
		{input: "0.25:", want: Number(0.25), rest: ":"},
		{input: "1x", want: Number(1), rest: "x"},

		{input: "x", fail: NotFound},
		{input: "-x", fail: NotFound},
		{input: "+5", fail: NotFound},
		{input: ".5", fail: NotFound},
		{input: "", fail: NotFound},

		{input: "00", fail: InvalidNumber},
		{input: "1.", fail: InvalidNumber},
		{input: "1.2.3", fail: InvalidNumber},
		{input: "1e5e", fail: InvalidNumber},
		{input: "1E-", fail: InvalidNumber},
		{input: "5-", fail: InvalidNumber},
		{input: "1e309", fail: InvalidNumber},
	})
}

func TestStringRule(t *testing.T) {
	runRuleTests(t, "str", (*parser).str, []ruleTest{
		{input: `"" x`, want: String(""), rest: " x"},
		{input: `"abc":`, want: String("abc"), rest: ":"},
		{input: `"a\"b"`, want: String(`a"b`)},
		{input: `"\\"`, want: String(`\`)},
		{input: `"\\\""`, want: String(`\"`)},
		{input: `"\tA\/",`, want: String("\tA/"), rest: ","},

		{input: `abc"`, fail: NotFound},
		{input: ``, fail: NotFound},
		{input: `'a'`, fail: NotFound},

		{input: `"abc`, fail: MissingClosing},
		{input: `"abc\"`, fail: MissingClosing},
		{input: `"\a"`, fail: UnexpectedChar},
		{input: `"\u00G0"`, fail: UnexpectedChar},
		{input: "\"\x7f\x1f\"", fail: UnexpectedChar},
		{input: "\"\xc3\x28\"", fail: UnexpectedChar},
	})
}

func TestStringSharing(t *testing.T) {
	input := strings.Clone(`"plain text" "esc\naped"`)
	var p parser

	v, rest, err := p.str(input)
	if err != nil {
		t.Fatalf("str: unexpected error: %v", err)
	}
	got := string(v.(String))
	if unsafe.StringData(got) != unsafe.StringData(input[1:]) {
		t.Errorf("Unescaped string %q does not share storage with its input", got)
	}

	v, _, err = p.str(skipSpace(rest))
	if err != nil {
		t.Fatalf("str: unexpected error: %v", err)
	}
	if got := v.(String); got != "esc\naped" {
		t.Errorf("Escaped string: got %q, want %q", got, "esc\naped")
	}
}

func TestDepthBalance(t *testing.T) {
	p := &parser{maxDepth: 3}
	for _, input := range []string{`[[1],[2],{"a":[3]}]`, `[[[]]]`, `[[[[]]]]`, `{"a":{"b":[`} {
		p.element(input)
		if p.depth != 0 {
			t.Errorf("After %#q: depth is %d, want 0", input, p.depth)
			p.depth = 0
		}
	}
}
