// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Error reports an invalid escape sequence in the body of a string.
type Error struct {
	Pos     int    // offset of the offending byte in the input to Unquote
	Message string // description of the problem
}

func (e *Error) Error() string { return fmt.Sprintf("%s (offset %d)", e.Message, e.Pos) }

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \u escape
// naming one half of a UTF-16 surrogate pair that is not completed by the
// other half decodes to the Unicode replacement rune. Any other invalid or
// incomplete escape is reported as an *Error.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	putRune := func(r rune) { dec = utf8.AppendRune(dec, r) }
	pos := 0 // offset of src in the original input
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src, pos = src.SliceFrom(i+1), pos+i+1
		if src.Len() == 0 {
			return nil, &Error{Pos: pos - 1, Message: "incomplete escape sequence"}
		}
		c := src.At(0)
		src, pos = src.SliceFrom(1), pos+1
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, err := parseHex4(src)
			if err != nil {
				return nil, &Error{Pos: pos - 1, Message: err.Error()}
			}
			src, pos = src.SliceFrom(4), pos+4

			if utf16.IsSurrogate(r) {
				// Consume the low half only if it completes a valid pair;
				// otherwise it is decoded on its own by the next iteration.
				if lo, ok := lowSurrogate(src); ok {
					if pr := utf16.DecodeRune(r, lo); pr != utf8.RuneError {
						putRune(pr)
						src, pos = src.SliceFrom(6), pos+6
						break
					}
				}
				r = utf8.RuneError
			}
			putRune(r)
		default:
			return nil, &Error{Pos: pos - 1, Message: fmt.Sprintf("invalid %q after escape", c)}
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// lowSurrogate reports whether data begins with a \u escape, and if so
// returns the rune it encodes.
func lowSurrogate(data mem.RO) (rune, bool) {
	if data.Len() < 6 || data.At(0) != '\\' || data.At(1) != 'u' {
		return 0, false
	}
	r, err := parseHex4(data.SliceFrom(2))
	return r, err == nil
}

// parseHex4 decodes exactly four hexadecimal digits from the front of data.
func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("incomplete Unicode escape")
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
