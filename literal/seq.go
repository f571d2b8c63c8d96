// Package literal extracts required prefix literals from parsed
// patterns.
//
// A literal prefix is a byte sequence every match must begin with. The
// prefilter package turns a sequence of such prefixes into a fast
// candidate-position filter, so the backtracking engine only runs at
// offsets where a prefix actually occurs.
package literal

// Literal is one required prefix. Complete marks a literal whose
// occurrence anywhere in the subject is itself a full match: it covers
// the entire match text and no anchor constrains its position.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Seq is an ordered set of alternative prefixes: any match must start
// with one of them. An empty Seq means no usable prefix could be
// extracted.
type Seq struct {
	lits []Literal
}

// NewSeq returns an empty sequence.
func NewSeq() *Seq {
	return &Seq{}
}

// Push appends a literal.
func (s *Seq) Push(lit Literal) {
	s.lits = append(s.lits, lit)
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether no literal was extracted.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := len(s.lits[0].Bytes)
	for _, lit := range s.lits[1:] {
		if len(lit.Bytes) < min {
			min = len(lit.Bytes)
		}
	}
	return min
}

// markIncomplete downgrades every literal to a bare prefix.
func (s *Seq) markIncomplete() {
	for i := range s.lits {
		s.lits[i].Complete = false
	}
}

// allComplete reports whether every literal covers a whole match.
func (s *Seq) allComplete() bool {
	for _, lit := range s.lits {
		if !lit.Complete {
			return false
		}
	}
	return true
}
