package literal

import (
	"github.com/coregx/retrace/syntax"
)

// ExtractorConfig bounds extraction so that wide alternations and large
// character classes cannot blow up the literal set.
type ExtractorConfig struct {
	// MaxLiterals limits how many alternative prefixes are kept.
	// Extraction that would exceed it stops extending instead.
	MaxLiterals int

	// MaxLiteralLen truncates each prefix; a truncated prefix is no
	// longer Complete.
	MaxLiteralLen int

	// MaxClassSize is the largest character class to expand into
	// individual codepoints. Classes with built-ins, categories, or
	// negation are never expanded.
	MaxClassSize int
}

// DefaultConfig returns the extraction limits used by Compile.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor walks a pattern AST collecting required prefixes.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given limits.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the set of prefixes such that every match of
// the pattern begins with one of them, or an empty Seq when no such set
// exists (the pattern can start with arbitrary text).
func (e *Extractor) ExtractPrefixes(p *syntax.Pattern) *Seq {
	seq, ok := e.prefixes(p.Root)
	if !ok {
		return NewSeq()
	}
	return seq
}

// prefixes returns the required prefixes of n. ok is false when n can
// begin with text the extractor cannot enumerate, which poisons the
// whole extraction for any alternation containing it.
func (e *Extractor) prefixes(n *syntax.Node) (*Seq, bool) {
	switch n.Op {
	case syntax.OpLiteral:
		seq := NewSeq()
		seq.Push(Literal{Bytes: []byte(string(n.Rune)), Complete: true})
		return seq, true

	case syntax.OpClass:
		return e.expandClass(n.Class)

	case syntax.OpGroup:
		return e.prefixes(n.Sub[0])

	case syntax.OpSequence:
		return e.sequence(n.Sub)

	case syntax.OpAlternate:
		out := NewSeq()
		for _, branch := range n.Sub {
			seq, ok := e.prefixes(branch)
			if !ok {
				return nil, false
			}
			if out.Len()+seq.Len() > e.config.MaxLiterals {
				return nil, false
			}
			for i := 0; i < seq.Len(); i++ {
				out.Push(seq.Get(i))
			}
		}
		return out, true

	case syntax.OpRepeat:
		if n.Min == 0 {
			return nil, false
		}
		seq, ok := e.prefixes(n.Sub[0])
		if !ok {
			return nil, false
		}
		// One mandatory copy of the body is a prefix; further
		// repetitions make it incomplete.
		seq.markIncomplete()
		return seq, true
	}

	// AnyChar, anchors, backreferences: nothing enumerable.
	return nil, false
}

// sequence chains item prefixes left to right, skipping zero-width
// anchors, and extends across items only while every literal is still
// complete. An anchor anywhere in the sequence adds no text but still
// constrains where a match may sit, so the result loses Complete.
func (e *Extractor) sequence(items []*syntax.Node) (*Seq, bool) {
	anchored := false
	i := 0
	for i < len(items) && items[i].Op == syntax.OpAnchor {
		anchored = true
		i++
	}
	if i == len(items) {
		return nil, false
	}

	out, ok := e.prefixes(items[i])
	if !ok {
		return nil, false
	}
	for i++; i < len(items); i++ {
		if !out.allComplete() {
			break
		}
		if items[i].Op == syntax.OpAnchor {
			anchored = true
			continue
		}
		next, ok := e.prefixes(items[i])
		if !ok {
			out.markIncomplete()
			break
		}
		var extended *Seq
		extended, ok = e.cross(out, next)
		if !ok {
			out.markIncomplete()
			break
		}
		out = extended
	}
	if anchored {
		out.markIncomplete()
	}
	return out, true
}

// cross concatenates every literal of a with every literal of b,
// honoring the count and length limits.
func (e *Extractor) cross(a, b *Seq) (*Seq, bool) {
	if a.Len()*b.Len() > e.config.MaxLiterals {
		return nil, false
	}
	out := NewSeq()
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			la, lb := a.Get(i), b.Get(j)
			joined := make([]byte, 0, len(la.Bytes)+len(lb.Bytes))
			joined = append(joined, la.Bytes...)
			joined = append(joined, lb.Bytes...)
			complete := la.Complete && lb.Complete
			if len(joined) > e.config.MaxLiteralLen {
				joined = joined[:e.config.MaxLiteralLen]
				complete = false
			}
			out.Push(Literal{Bytes: joined, Complete: complete})
		}
	}
	return out, true
}

// expandClass enumerates a small positive class into one-codepoint
// literals.
func (e *Extractor) expandClass(c *syntax.Class) (*Seq, bool) {
	if c.Negated || len(c.Builtins) > 0 || len(c.Categories) > 0 {
		return nil, false
	}
	size := 0
	for _, rr := range c.Ranges {
		size += int(rr.Hi-rr.Lo) + 1
		if size > e.config.MaxClassSize {
			return nil, false
		}
	}
	seq := NewSeq()
	for _, rr := range c.Ranges {
		for r := rr.Lo; r <= rr.Hi; r++ {
			seq.Push(Literal{Bytes: []byte(string(r)), Complete: true})
		}
	}
	return seq, true
}
