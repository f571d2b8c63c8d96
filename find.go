package retrace

import (
	"github.com/coregx/retrace/internal/runes"
)

// MatchAt attempts to match starting exactly at the codepoint offset
// start. It returns (nil, nil) when the pattern does not match there,
// which is an ordinary outcome rather than an error, and
// ErrResourceExhausted when the attempt crossed the step budget.
func (re *Regex) MatchAt(subject string, start int) (*Match, error) {
	return re.matchRunes([]rune(subject), start)
}

func (re *Regex) matchRunes(input []rune, start int) (*Match, error) {
	caps, err := re.matcher.Run(input, start)
	if err != nil || caps == nil {
		return nil, err
	}
	return newMatch(input, caps), nil
}

// Find returns the first match anywhere in the subject, or (nil, nil)
// when there is none. The search repeats anchored attempts at
// successive codepoint offsets, skipping ahead with the prefilter when
// one was built.
func (re *Regex) Find(subject string) (*Match, error) {
	return re.findFrom(re.haystack(subject), []rune(subject), runes.NewCursor(subject), 0)
}

// haystack converts the subject for prefilter scanning; filterless
// regexes never need the bytes.
func (re *Regex) haystack(subject string) []byte {
	if re.filter == nil {
		return nil
	}
	return []byte(subject)
}

// IsMatch reports whether the pattern matches anywhere in the subject.
// When every prefilter literal is an entire match on its own, an
// occurrence of one settles the question without running the engine.
func (re *Regex) IsMatch(subject string) (bool, error) {
	if re.filter != nil && re.filter.IsComplete() {
		return re.filter.Find([]byte(subject), 0) >= 0, nil
	}
	m, err := re.Find(subject)
	return m != nil, err
}

// FindAll returns up to n successive non-overlapping matches; n < 0
// means all. An empty match advances the scan by one codepoint so the
// search always terminates.
func (re *Regex) FindAll(subject string, n int) ([]*Match, error) {
	input := []rune(subject)
	cur := runes.NewCursor(subject)
	hay := re.haystack(subject)

	var out []*Match
	off := 0
	for (n < 0 || len(out) < n) && off <= len(input) {
		cur.AdvanceToRune(off)
		m, err := re.findFrom(hay, input, cur, off)
		if err != nil {
			return nil, err
		}
		if m == nil {
			break
		}
		out = append(out, m)
		if m.End == m.Start {
			off = m.End + 1
		} else {
			off = m.End
		}
	}
	return out, nil
}

// findFrom runs the scan loop starting at codepoint offset start. cur
// must be positioned at start.
func (re *Regex) findFrom(hay []byte, input []rune, cur *runes.Cursor, start int) (*Match, error) {
	for off := start; off <= len(input); {
		if re.filter != nil {
			b := re.filter.Find(hay, cur.ByteOff())
			if b < 0 {
				return nil, nil
			}
			cur.AdvanceToByte(b)
			off = cur.RuneOff()
		}

		m, err := re.matchRunes(input, off)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return m, nil
		}
		if re.anchored {
			return nil, nil
		}
		off++
		cur.AdvanceRune()
	}
	return nil, nil
}
