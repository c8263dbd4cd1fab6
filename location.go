package jparse

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Locate reports the line and column of the given byte offset in text.
// Offsets outside the text are clamped to its bounds. An offset that
// addresses a newline, or the end of the text, belongs to the line it ends.
func Locate(text string, offset int) LineCol {
	_, _, lc := lineAt(text, offset)
	return lc
}

// lineAt finds the line of text containing offset, splitting on "\n". It
// returns the text of the previous line (empty on line 1), the text of the
// line itself without its newline, and the location of offset.
func lineAt(text string, offset int) (prev, line string, _ LineCol) {
	offset = min(max(offset, 0), len(text))

	src := mem.S(text)
	var start, lnum int
	for {
		lnum++
		end := len(text)
		if i := mem.IndexByte(src.SliceFrom(start), '\n'); i >= 0 {
			end = start + i
		}
		if offset <= end {
			return prev, text[start:end], LineCol{Line: lnum, Column: offset - start}
		}
		prev = text[start:end]
		start = end + 1
	}
}
