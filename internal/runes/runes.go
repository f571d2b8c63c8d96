// Package runes tracks a position in a UTF-8 string as both a byte
// offset and a codepoint offset.
//
// The engine reports codepoint offsets, while prefilters produce byte
// offsets into the raw subject. A Cursor converts between the two
// incrementally, so a search loop never re-decodes the prefix it has
// already passed.
package runes

import "unicode/utf8"

// Cursor is a monotonically advancing position in a string.
type Cursor struct {
	s       string
	byteOff int
	runeOff int
}

// NewCursor positions a cursor at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{s: s}
}

// ByteOff returns the current byte offset.
func (c *Cursor) ByteOff() int { return c.byteOff }

// RuneOff returns the current codepoint offset.
func (c *Cursor) RuneOff() int { return c.runeOff }

// AdvanceRune moves the cursor forward by one codepoint. It is a no-op
// at the end of the string.
func (c *Cursor) AdvanceRune() {
	if c.byteOff >= len(c.s) {
		return
	}
	_, width := utf8.DecodeRuneInString(c.s[c.byteOff:])
	c.byteOff += width
	c.runeOff++
}

// AdvanceToRune moves the cursor forward until its codepoint offset is
// at least target.
func (c *Cursor) AdvanceToRune(target int) {
	for c.runeOff < target && c.byteOff < len(c.s) {
		c.AdvanceRune()
	}
}

// AdvanceToByte moves the cursor forward until its byte offset is at
// least target. Callers pass offsets produced by byte-oriented searches
// over the same string; for the literals the extractor builds these
// always sit on rune boundaries.
func (c *Cursor) AdvanceToByte(target int) {
	for c.byteOff < target && c.byteOff < len(c.s) {
		c.AdvanceRune()
	}
}
