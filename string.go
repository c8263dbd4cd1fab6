// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"errors"
	"unicode/utf8"

	"github.com/creachadair/jparse/internal/escape"

	"go4.org/mem"
)

// str parses a double-quoted string. If the string contains no escape
// sequences, the result is a substring of s; otherwise the body is decoded
// into a new string.
func (p *parser) str(s string) (Value, string, error) {
	if s == "" || s[0] != '"' {
		return nil, s, errNotFound
	}
	body := s[1:]

	var escaped, esc bool
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case esc:
			switch c {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
				// OK; \u digits are checked during decoding
			default:
				return nil, body[i:], fail(UnexpectedChar, body[i:])
			}
			esc = false

		case c == '"':
			rest := body[i+1:]
			if !escaped {
				return String(body[:i]), rest, nil
			}
			dec, err := escape.Unquote(mem.S(body[:i]))
			if err != nil {
				var eerr *escape.Error
				if errors.As(err, &eerr) {
					return nil, rest, fail(UnexpectedChar, body[eerr.Pos:])
				}
				return nil, rest, fail(UnexpectedChar, body)
			}
			return String(dec), rest, nil

		case c == '\\':
			escaped, esc = true, true

		case c < ' ':
			return nil, body[i:], fail(UnexpectedChar, body[i:])

		case c >= utf8.RuneSelf:
			r, n := utf8.DecodeRuneInString(body[i:])
			if r == utf8.RuneError && n == 1 {
				return nil, body[i:], fail(UnexpectedChar, body[i:])
			}
			i += n
			continue
		}
		i++
	}

	// The failure is located just past the opening quote.
	return nil, "", fail(MissingClosing, body)
}
