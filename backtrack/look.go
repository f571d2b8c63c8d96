package backtrack

import "github.com/coregx/retrace/syntax"

// assertHolds tests a zero-width assertion against the cursor's
// surrounding context. start is the offset this match attempt began at,
// needed only by \G.
func assertHolds(kind syntax.AnchorKind, input []rune, pos, start int) bool {
	switch kind {
	case syntax.AnchorBeginText:
		return pos == 0

	case syntax.AnchorEndText:
		return pos == len(input)

	case syntax.AnchorEndTextOptNL:
		if pos == len(input) {
			return true
		}
		return pos == len(input)-1 && input[pos] == '\n'

	case syntax.AnchorWordBoundary:
		return wordBefore(input, pos) != wordAfter(input, pos)

	case syntax.AnchorNoWordBoundary:
		return wordBefore(input, pos) == wordAfter(input, pos)

	case syntax.AnchorMatchStart:
		return pos == start
	}
	return false
}

// Before-start and after-end both classify as non-word.
func wordBefore(input []rune, pos int) bool {
	return pos > 0 && syntax.IsWordRune(input[pos-1])
}

func wordAfter(input []rune, pos int) bool {
	return pos < len(input) && syntax.IsWordRune(input[pos])
}
