// Package prefilter builds fast candidate-position filters from
// extracted literal prefixes.
//
// A prefilter scans the subject for the literal prefixes a match must
// begin with, so the backtracking engine only runs at positions where
// one actually occurs. Prefilters are advisory: every candidate is
// verified by the engine, so a prefilter can never change match
// semantics, only skip impossible start positions.
//
// Strategy selection by literal shape:
//   - single one-byte literal → byte search (bytes.IndexByte)
//   - single literal → substring search (bytes.Index)
//   - multiple literals → Aho-Corasick automaton
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/retrace/literal"
)

// Prefilter finds candidate match positions.
type Prefilter interface {
	// Find returns the byte index of the first candidate at or after
	// start, or -1 when no candidate remains.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is guaranteed to be a full
	// match rather than just a required prefix.
	IsComplete() bool
}

// Build selects a prefilter for the extracted prefixes, or nil when the
// sequence is empty, contains an empty or too-short literal, or exceeds
// maxLiterals. A nil prefilter means the caller scans every position.
func Build(seq *literal.Seq, minLen, maxLiterals int) Prefilter {
	if seq == nil || seq.IsEmpty() || seq.Len() > maxLiterals || seq.MinLen() < minLen {
		return nil
	}

	complete := true
	for i := 0; i < seq.Len(); i++ {
		if !seq.Get(i).Complete {
			complete = false
			break
		}
	}

	if seq.Len() == 1 {
		needle := seq.Get(0).Bytes
		if len(needle) == 1 {
			return &memchrPrefilter{needle: needle[0], complete: complete}
		}
		return &memmemPrefilter{needle: needle, complete: complete}
	}

	builder := ahocorasick.NewBuilder()
	needles := make([][]byte, seq.Len())
	maxLen := 0
	for i := 0; i < seq.Len(); i++ {
		needles[i] = seq.Get(i).Bytes
		builder.AddPattern(needles[i])
		if len(needles[i]) > maxLen {
			maxLen = len(needles[i])
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{auto: auto, needles: needles, maxLen: maxLen, complete: complete}
}

// memchrPrefilter scans for a single byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	i := bytes.IndexByte(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memchrPrefilter) IsComplete() bool { return p.complete }

// memmemPrefilter scans for a single substring.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	i := bytes.Index(haystack[start:], p.needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (p *memmemPrefilter) IsComplete() bool { return p.complete }

// ahoCorasickPrefilter scans for any of several literals in one pass.
type ahoCorasickPrefilter struct {
	auto     *ahocorasick.Automaton
	needles  [][]byte
	maxLen   int
	complete bool
}

func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	// The automaton reports the occurrence with the smallest end offset.
	// A longer literal can begin earlier yet end later ("foo" vs "oo"),
	// and the caller needs the smallest start. Any earlier occurrence
	// must still end at or after m.End, so its start lies within maxLen
	// bytes of m.End; rescan that window for the minimum start.
	best := m.Start
	lo := m.End - p.maxLen
	if lo < start {
		lo = start
	}
	for _, needle := range p.needles {
		hi := best + len(needle) - 1
		if hi > len(haystack) {
			hi = len(haystack)
		}
		if hi-lo < len(needle) {
			continue
		}
		if i := bytes.Index(haystack[lo:hi], needle); i >= 0 && lo+i < best {
			best = lo + i
		}
	}
	return best
}

func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }
