// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jparse

import "strconv"

// number parses a number:
//
//	number   = [ "-" ] int [ frac ] [ exp ]
//	int      = "0" / ( digit1-9 *digit )
//	frac     = "." 1*digit
//	exp      = ( "e" / "E" ) [ "-" / "+" ] 1*digit
//
// Input with no integer part is not a number. Once the integer part is
// found, a malformed fraction or exponent is an error, and so is a number
// character directly following the production, as in "01" or "1.5.2".
func (p *parser) number(s string) (Value, string, error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && isDigit(s[i]):
		i += countDigits(s[i:])
	default:
		return nil, s, errNotFound
	}

	if i < len(s) && s[i] == '.' {
		i++
		n := countDigits(s[i:])
		if n == 0 {
			return nil, s[i:], fail(InvalidNumber, s[i:])
		}
		i += n
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n := countDigits(s[i:])
		if n == 0 {
			return nil, s[i:], fail(InvalidNumber, s[i:])
		}
		i += n
	}

	if i < len(s) && isNumberByte(s[i]) {
		return nil, s[i:], fail(InvalidNumber, s[i:])
	}

	// The token is syntactically valid, so conversion fails only if the
	// value is out of range for a float64.
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return nil, s, fail(InvalidNumber, s)
	}
	return Number(f), s[i:], nil
}

func countDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return len(s)
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isNumberByte(b byte) bool {
	switch b {
	case '.', 'e', 'E', '+', '-':
		return true
	}
	return isDigit(b)
}
