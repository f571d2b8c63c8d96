package backtrack

import "github.com/coregx/retrace/syntax"

// DefaultMaxSteps is the step budget when none is configured. Every
// executed instruction costs one step, so the budget bounds catastrophic
// backtracking like (a+)+b against a long run of 'a'.
const DefaultMaxSteps = 1 << 20

// Matcher executes a compiled program. A Matcher is immutable and safe
// for concurrent use: every Run call owns its own cursor, choice-point
// stack, capture slots, and undo log.
type Matcher struct {
	prog     *Prog
	maxSteps int
}

// NewMatcher wraps prog with the given step budget. maxSteps <= 0
// selects DefaultMaxSteps.
func NewMatcher(prog *Prog, maxSteps int) *Matcher {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Matcher{prog: prog, maxSteps: maxSteps}
}

// frame is a choice point: the pending alternative's pc, the cursor to
// restore, and the undo-log length to roll registers back to.
type frame struct {
	pc   int
	pos  int
	undo int
}

// undoEntry records a register's prior value so backtracking can
// restore capture slots, group-entry registers, and loop marks.
type undoEntry struct {
	reg int
	old int
}

// Run attempts to match starting exactly at start (a codepoint offset).
// On success it returns the capture slots: slots 0 and 1 hold the
// overall span, slots 2k and 2k+1 hold group k, and -1 marks an unset
// slot. A nil slice with a nil error is the ordinary no-match outcome;
// ErrResourceExhausted is returned when the step budget is crossed.
func (m *Matcher) Run(input []rune, start int) ([]int, error) {
	if start < 0 || start > len(input) {
		return nil, nil
	}

	prog := m.prog
	// Register layout: capture slots, then one entry register per
	// group, then the loop marks.
	regs := make([]int, prog.numCaps+prog.numGroups+prog.numMarks)
	for i := range regs {
		regs[i] = -1
	}
	regs[0] = start

	var (
		stack []frame
		undo  []undoEntry
		pos   = start
		pc    = 0
		steps = 0
	)
	markBase := prog.numCaps + prog.numGroups

	for {
		steps++
		if steps > m.maxSteps {
			return nil, ErrResourceExhausted
		}

		in := &prog.insts[pc]
		switch in.op {
		case opChar:
			if pos < len(input) && input[pos] == in.r {
				pos++
				pc++
				continue
			}

		case opAny:
			// '.' matches exactly the codepoints the grammar's Char
			// production admits, line terminators included.
			if pos < len(input) && syntax.ValidChar(input[pos]) {
				pos++
				pc++
				continue
			}

		case opClass:
			if pos < len(input) && in.class.Contains(input[pos]) {
				pos++
				pc++
				continue
			}

		case opAssert:
			if assertHolds(in.assert, input, pos, start) {
				pc++
				continue
			}

		case opSplit:
			stack = append(stack, frame{pc: in.y, pos: pos, undo: len(undo)})
			pc = in.x
			continue

		case opJmp:
			pc = in.x
			continue

		case opSave:
			undo = append(undo, undoEntry{reg: in.arg, old: regs[in.arg]})
			regs[in.arg] = pos
			pc++
			continue

		case opCapture:
			// Commit group arg: the slots keep their previous span until
			// the body has fully succeeded, so a backreference evaluated
			// during re-entry still sees the last committed capture.
			k := in.arg
			entry := prog.numCaps + k - 1
			undo = append(undo,
				undoEntry{reg: 2 * k, old: regs[2*k]},
				undoEntry{reg: 2*k + 1, old: regs[2*k+1]})
			regs[2*k] = regs[entry]
			regs[2*k+1] = pos
			pc++
			continue

		case opSetMark:
			reg := markBase + in.arg
			undo = append(undo, undoEntry{reg: reg, old: regs[reg]})
			regs[reg] = pos
			pc++
			continue

		case opLoop:
			reg := markBase + in.arg
			if pos != regs[reg] {
				undo = append(undo, undoEntry{reg: reg, old: regs[reg]})
				regs[reg] = pos
				pc = in.x
				continue
			}
			// Zero-width iteration: abandon this path instead of
			// spinning forever.

		case opBackref:
			lo, hi := regs[2*in.arg], regs[2*in.arg+1]
			if lo >= 0 && hi >= lo && pos+(hi-lo) <= len(input) &&
				runesEqual(input[pos:pos+(hi-lo)], input[lo:hi]) {
				pos += hi - lo
				pc++
				continue
			}
			// An unset group makes the backreference fail on this path;
			// backtracking proceeds normally.

		case opMatch:
			regs[1] = pos
			caps := make([]int, prog.numCaps)
			copy(caps, regs[:prog.numCaps])
			return caps, nil
		}

		// The current path failed: pop the most recent choice point,
		// roll the registers back to its undo watermark, and resume at
		// its pending alternative.
		if len(stack) == 0 {
			return nil, nil
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for len(undo) > f.undo {
			e := undo[len(undo)-1]
			undo = undo[:len(undo)-1]
			regs[e.reg] = e.old
		}
		pc, pos = f.pc, f.pos
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
