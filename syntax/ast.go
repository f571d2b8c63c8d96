// Package syntax implements the tokenizer, parser, and abstract syntax
// tree for the retrace regex dialect.
//
// The dialect covers anchors (^ $ \A \z \Z \G \b \B), alternation,
// capturing and non-capturing groups, greedy and lazy quantifiers
// (* + ? {m} {m,} {m,n}), character classes with ranges, the built-in
// classes \w \W \d \D, Unicode general-category references \p{Name},
// and backreferences \1..\9 and beyond.
//
// Parse produces an immutable Pattern that is safe to share across
// goroutines. Compilation to an executable form lives in the backtrack
// package; this package is only concerned with surface syntax and
// static validation.
package syntax

import "unicode"

// Op identifies the shape of a Node.
type Op uint8

const (
	// OpLiteral matches a single codepoint.
	OpLiteral Op = iota + 1
	// OpAnyChar matches any codepoint ('.').
	OpAnyChar
	// OpClass matches one codepoint against a Class predicate.
	OpClass
	// OpSequence matches Sub in order.
	OpSequence
	// OpAlternate tries Sub in order, first success wins.
	OpAlternate
	// OpGroup matches Sub[0]; Cap > 0 records the span.
	OpGroup
	// OpRepeat matches Sub[0] between Min and Max times.
	OpRepeat
	// OpAnchor is a zero-width assertion.
	OpAnchor
	// OpBackref matches the text last captured by group Index.
	OpBackref
)

// AnchorKind identifies a zero-width assertion.
//
// The dialect treats ^ as equivalent to \A and $ as equivalent to \z:
// both match exclusively at the true start or end of the subject, never
// around line terminators. \Z additionally matches immediately before a
// single trailing newline.
type AnchorKind uint8

const (
	// AnchorBeginText matches only at offset 0 (^ and \A).
	AnchorBeginText AnchorKind = iota + 1
	// AnchorEndText matches only at the end of the subject ($ and \z).
	AnchorEndText
	// AnchorEndTextOptNL matches at the end of the subject, or just
	// before a single trailing newline (\Z).
	AnchorEndTextOptNL
	// AnchorWordBoundary matches where exactly one side is a word
	// codepoint (\b).
	AnchorWordBoundary
	// AnchorNoWordBoundary matches where both sides agree (\B).
	AnchorNoWordBoundary
	// AnchorMatchStart matches only at the offset the match attempt
	// started at (\G).
	AnchorMatchStart
)

// Node is a single AST node. It is a closed sum over Op: only the
// fields relevant to the node's Op are populated. Nodes are immutable
// once returned by Parse.
type Node struct {
	Op Op

	// Sub holds alternation branches, sequence items, or the single
	// body of a group or repetition.
	Sub []*Node

	// Rune is the codepoint of an OpLiteral.
	Rune rune

	// Class is the membership predicate of an OpClass.
	Class *Class

	// Min and Max bound an OpRepeat. Max == -1 means unbounded.
	Min, Max int

	// Lazy marks an OpRepeat that prefers the minimum count.
	Lazy bool

	// Cap is the capture index of an OpGroup, or 0 for (?: groups.
	Cap int

	// Anchor is the assertion of an OpAnchor.
	Anchor AnchorKind

	// Index is the group referenced by an OpBackref.
	Index int
}

// Pattern is a parsed regular expression: the AST root plus the number
// of capturing groups. Capture indices are exactly 1..NumGroups,
// assigned by position of the opening parenthesis.
type Pattern struct {
	Root      *Node
	NumGroups int
}

// AnchoredStart reports whether every match of the pattern must begin
// at the start of the subject, i.e. the pattern opens with ^ or \A on
// every path. Callers use this to skip the unanchored scan loop.
func (p *Pattern) AnchoredStart() bool {
	return anchoredStart(p.Root)
}

func anchoredStart(n *Node) bool {
	switch n.Op {
	case OpAnchor:
		return n.Anchor == AnchorBeginText
	case OpSequence:
		return len(n.Sub) > 0 && anchoredStart(n.Sub[0])
	case OpGroup:
		return anchoredStart(n.Sub[0])
	case OpAlternate:
		for _, b := range n.Sub {
			if !anchoredStart(b) {
				return false
			}
		}
		return len(n.Sub) > 0
	case OpRepeat:
		return n.Min > 0 && anchoredStart(n.Sub[0])
	}
	return false
}

// BuiltinClass identifies one of the shorthand classes.
type BuiltinClass uint8

const (
	// BuiltinDigit is \d: [0-9].
	BuiltinDigit BuiltinClass = iota + 1
	// BuiltinNotDigit is \D.
	BuiltinNotDigit
	// BuiltinWord is \w: [0-9A-Za-z_].
	BuiltinWord
	// BuiltinNotWord is \W.
	BuiltinNotWord
)

// RuneRange is an inclusive codepoint range.
type RuneRange struct {
	Lo, Hi rune
}

// Category is a resolved Unicode general-category reference. Name is
// retained for diagnostics; Tab is the stdlib range table the parser
// resolved it to.
type Category struct {
	Name string
	Tab  *unicode.RangeTable
}

// Class is the membership predicate of a character class: the union of
// explicit ranges, built-in classes, and Unicode categories, optionally
// negated. A class that is empty after negation is legal and simply
// fails every membership test.
type Class struct {
	Ranges     []RuneRange
	Builtins   []BuiltinClass
	Categories []Category
	Negated    bool
}

// Contains reports whether r is a member of the class.
func (c *Class) Contains(r rune) bool {
	return c.union(r) != c.Negated
}

func (c *Class) union(r rune) bool {
	for _, rr := range c.Ranges {
		if r >= rr.Lo && r <= rr.Hi {
			return true
		}
	}
	for _, b := range c.Builtins {
		switch b {
		case BuiltinDigit:
			if isDigitRune(r) {
				return true
			}
		case BuiltinNotDigit:
			if !isDigitRune(r) {
				return true
			}
		case BuiltinWord:
			if IsWordRune(r) {
				return true
			}
		case BuiltinNotWord:
			if !IsWordRune(r) {
				return true
			}
		}
	}
	for _, cat := range c.Categories {
		if unicode.Is(cat.Tab, r) {
			return true
		}
	}
	return false
}

// singleClass builds a Class holding exactly one built-in, used for a
// bare \d \D \w \W outside a bracket expression.
func singleClass(b BuiltinClass) *Class {
	return &Class{Builtins: []BuiltinClass{b}}
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsWordRune reports whether r is a word codepoint per the \w class:
// ASCII letters, digits, and underscore. Word boundaries (\b, \B) use
// the same classification.
func IsWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}
