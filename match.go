package retrace

// Match is the result of one successful match attempt. All offsets are
// codepoint offsets into the subject. A Match is immutable.
type Match struct {
	// Start and End delimit the overall matched span: [Start, End).
	Start, End int

	input []rune
	caps  []int
}

func newMatch(input []rune, caps []int) *Match {
	return &Match{
		Start: caps[0],
		End:   caps[1],
		input: input,
		caps:  caps,
	}
}

// Text returns the matched substring.
func (m *Match) Text() string {
	return string(m.input[m.Start:m.End])
}

// GroupCount returns the number of capturing groups in the pattern.
func (m *Match) GroupCount() int {
	return len(m.caps)/2 - 1
}

// Group returns the span captured by group i, with group 0 denoting the
// overall match. ok is false when the group did not participate in the
// match (or i is out of range); the span is then (-1, -1).
func (m *Match) Group(i int) (start, end int, ok bool) {
	if i < 0 || i > m.GroupCount() {
		return -1, -1, false
	}
	start, end = m.caps[2*i], m.caps[2*i+1]
	if start < 0 || end < 0 {
		return -1, -1, false
	}
	return start, end, true
}

// GroupText returns the text captured by group i, or "" when the group
// did not participate in the match.
func (m *Match) GroupText(i int) string {
	start, end, ok := m.Group(i)
	if !ok {
		return ""
	}
	return string(m.input[start:end])
}
