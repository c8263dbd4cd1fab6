// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"github.com/tailscale/hujson"

	"go4.org/mem"
)

// DefaultMaxDepth is the maximum nesting depth of arrays and objects accepted
// by a Parser that does not set its own limit.
const DefaultMaxDepth = 10000

// A Parser parses JSON text into values. The zero value is ready for use and
// accepts standard JSON, ignoring any text after the first value.
//
// The options of a Parser must not be changed while it is in use, but
// otherwise a Parser is safe for concurrent use by multiple goroutines.
type Parser struct {
	strict   bool // reject text after the top-level value
	jwcc     bool // accept comments and trailing commas
	maxDepth int  // 0 means DefaultMaxDepth, < 0 means unlimited
}

// RejectTrailingText configures p to report (true) or ignore (false) text
// other than whitespace following the top-level value. When enabled, such
// text is reported as an UnexpectedChar error at its first byte.
func (p *Parser) RejectTrailingText(ok bool) { p.strict = ok }

// AllowJWCC configures p to accept (true) or reject (false) JSON With Commas
// and Comments: C++ style line and block comments, and trailing commas in
// arrays and objects.
func (p *Parser) AllowJWCC(ok bool) { p.jwcc = ok }

// SetMaxDepth sets the maximum nesting depth of arrays and objects. If n == 0
// the limit is DefaultMaxDepth; if n < 0 nesting is limited only by the
// available stack. Input that exceeds the limit is reported as a TooDeep
// error at the opening delimiter.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Parse parses text with the default options.
func Parse(text string) (Value, error) { return new(Parser).Parse(text) }

// ParseBytes parses data with the default options.
func ParseBytes(data []byte) (Value, error) { return new(Parser).ParseBytes(data) }

// MustParse parses text with the default options, and panics if parsing
// fails. It is intended for tests and static initializers.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseBytes parses data as a single JSON value. Strings in the result do not
// share storage with data.
func (p *Parser) ParseBytes(data []byte) (Value, error) { return p.Parse(string(data)) }

// Parse parses text as a single JSON value. In case of error, the concrete
// type of the error is *ParseError.
func (p *Parser) Parse(text string) (Value, error) {
	src := text
	if p.jwcc {
		// Standardize blanks comments and trailing commas in place, so the
		// offsets of errors are unchanged. If hujson rejects the input, the
		// parser skips comments itself and reports the first error.
		if std, err := hujson.Standardize([]byte(text)); err == nil {
			src = string(std)
		}
	}

	ps := &parser{maxDepth: p.maxDepth, jwcc: p.jwcc}
	if ps.maxDepth == 0 {
		ps.maxDepth = DefaultMaxDepth
	}
	v, rest, err := ps.element(src)
	if err == errNotFound {
		if rest := ps.space(src); ps.openComment(rest) {
			err = fail(MissingClosing, rest)
		} else {
			err = fail(NotFound, rest)
		}
	} else if err == nil && p.strict && rest != "" {
		err = fail(UnexpectedChar, rest)
	}
	if err != nil {
		return nil, locate(text, err)
	}
	return v, nil
}

// locate fills in the position fields of a parse error for text.
func locate(text string, err error) error {
	pe := err.(*ParseError)
	pe.Offset = len(text) - pe.Remaining
	pe.Location = Locate(text, pe.Offset)
	return pe
}

// parser holds the state of a single parse. Each grammar rule consumes a
// prefix of its input and returns the value it parsed along with the
// unconsumed remainder. A rule that does not apply at the front of its input
// returns errNotFound; any other error is fatal to the parse.
type parser struct {
	depth, maxDepth int
	jwcc            bool // skip comments and trailing commas
}

// skipSpace returns s without its leading JSON whitespace.
func skipSpace(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return s[i:]
		}
	}
	return ""
}

// space returns s without its leading whitespace, and in JWCC mode, without
// its leading comments. An unterminated block comment is not skipped.
func (p *parser) space(s string) string {
	s = skipSpace(s)
	for p.jwcc && len(s) >= 2 && s[0] == '/' {
		switch s[1] {
		case '/': // line comment to LF
			i := mem.IndexByte(mem.S(s), '\n')
			if i < 0 {
				return ""
			}
			s = skipSpace(s[i+1:])
		case '*': // block comment
			i := mem.Index(mem.S(s[2:]), mem.S("*/"))
			if i < 0 {
				return s
			}
			s = skipSpace(s[i+4:])
		default:
			return s
		}
	}
	return s
}

// openComment reports whether s begins with a block comment that space could
// not skip because it is not terminated.
func (p *parser) openComment(s string) bool {
	return p.jwcc && mem.HasPrefix(mem.S(s), mem.S("/*"))
}

// trailingComma reports whether, in JWCC mode, the comma before s is followed
// by the closing delimiter end. If so, it returns the remainder beginning with
// end.
func (p *parser) trailingComma(s string, end byte) (string, bool) {
	if !p.jwcc {
		return s, false
	}
	t := p.space(s)
	return t, t != "" && t[0] == end
}

// element parses a value surrounded by optional whitespace.
func (p *parser) element(s string) (Value, string, error) {
	v, rest, err := p.value(p.space(s))
	if err != nil {
		return nil, rest, err
	}
	return v, p.space(rest), nil
}

// value parses a value of any type. The alternatives are tried in order, and
// the first that applies determines the result.
func (p *parser) value(s string) (Value, string, error) {
	if v, rest, err := p.object(s); err != errNotFound {
		return v, rest, err
	}
	if v, rest, err := p.array(s); err != errNotFound {
		return v, rest, err
	}
	if v, rest, err := p.str(s); err != errNotFound {
		return v, rest, err
	}
	if v, rest, err := p.number(s); err != errNotFound {
		return v, rest, err
	}
	if v, rest, err := p.boolean(s); err != errNotFound {
		return v, rest, err
	}
	return p.null(s)
}

// array parses "[" elements "]".
func (p *parser) array(s string) (Value, string, error) {
	if s == "" || s[0] != '[' {
		return nil, s, errNotFound
	}
	if err := p.enter(s); err != nil {
		return nil, s, err
	}
	defer p.leave()

	s = p.space(s[1:])
	if s != "" && s[0] == ']' {
		return Array{}, s[1:], nil
	}

	vs, s, err := p.elements(s)
	if err != nil {
		return nil, s, err
	} else if s == "" || s[0] != ']' {
		return nil, s, fail(MissingClosing, s)
	}
	return vs, s[1:], nil
}

// elements parses one or more comma-separated elements.
func (p *parser) elements(s string) (Array, string, error) {
	var vs Array
	for {
		v, rest, err := p.element(s)
		if err == errNotFound {
			return nil, rest, p.required(rest)
		} else if err != nil {
			return nil, rest, err
		}
		vs = append(vs, v)

		if rest == "" || rest[0] != ',' {
			return vs, rest, nil
		}
		if t, ok := p.trailingComma(rest[1:], ']'); ok {
			return vs, t, nil
		}
		s = rest[1:]
	}
}

// object parses "{" members "}".
func (p *parser) object(s string) (Value, string, error) {
	if s == "" || s[0] != '{' {
		return nil, s, errNotFound
	}
	if err := p.enter(s); err != nil {
		return nil, s, err
	}
	defer p.leave()

	s = p.space(s[1:])
	if s != "" && s[0] == '}' {
		return Object{}, s[1:], nil
	}

	obj := make(Object)
	s, err := p.members(s, obj)
	if err != nil {
		return nil, s, err
	} else if s == "" || s[0] != '}' {
		return nil, s, fail(MissingClosing, s)
	}
	return obj, s[1:], nil
}

// members parses one or more comma-separated members into obj.
func (p *parser) members(s string, obj Object) (string, error) {
	for {
		key, v, rest, err := p.member(s)
		if err == errNotFound {
			return rest, p.required(rest)
		} else if err != nil {
			return rest, err
		}
		obj[key] = v // the last duplicate wins

		if rest == "" || rest[0] != ',' {
			return rest, nil
		}
		if t, ok := p.trailingComma(rest[1:], '}'); ok {
			return t, nil
		}
		s = rest[1:]
	}
}

// member parses string ":" element.
func (p *parser) member(s string) (string, Value, string, error) {
	s = p.space(s)
	key, s, err := p.str(s)
	if err != nil {
		return "", nil, s, err
	}
	s = p.space(s)
	if s == "" || s[0] != ':' {
		return "", nil, s, fail(UnexpectedChar, s)
	}
	v, rest, err := p.element(s[1:])
	if err == errNotFound {
		return "", nil, rest, p.required(rest)
	} else if err != nil {
		return "", nil, rest, err
	}
	return string(key.(String)), v, rest, nil
}

// required converts the failure to find a value that the grammar requires at
// the front of rest into a fatal error. An unterminated block comment is
// reported as missing its closing delimiter.
func (p *parser) required(rest string) error {
	rest = p.space(rest)
	if rest == "" || p.openComment(rest) {
		return fail(MissingClosing, rest)
	}
	return fail(UnexpectedChar, rest)
}

func (p *parser) boolean(s string) (Value, string, error) {
	if rest, ok := trimLiteral(s, "true"); ok {
		return True, rest, nil
	} else if rest, ok := trimLiteral(s, "false"); ok {
		return False, rest, nil
	}
	return nil, s, errNotFound
}

func (p *parser) null(s string) (Value, string, error) {
	if rest, ok := trimLiteral(s, "null"); ok {
		return Null{}, rest, nil
	}
	return nil, s, errNotFound
}

func trimLiteral(s, lit string) (string, bool) {
	if mem.HasPrefix(mem.S(s), mem.S(lit)) {
		return s[len(lit):], true
	}
	return s, false
}

// enter records entry into an array or object whose opening delimiter is at
// the front of s.
func (p *parser) enter(s string) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		p.depth--
		return fail(TooDeep, s)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }
