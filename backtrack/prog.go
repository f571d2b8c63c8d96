// Package backtrack compiles a parsed pattern into a flat instruction
// program and executes it with a bounded depth-first backtracking
// search.
//
// Backreferences make the dialect non-regular, so no pure
// finite-automaton construction can execute it. The engine instead
// walks the program with an explicit choice-point stack: each frame
// records the pending alternative's program counter, the input cursor,
// and the undo-log length to roll capture slots and loop registers back
// to. Using an explicit stack keeps depth bounded and gives every
// instruction a uniform step-budget checkpoint.
//
// A Prog is immutable after Compile and may be shared across concurrent
// matches; all mutable search state is allocated per Run call.
package backtrack

import (
	"github.com/coregx/retrace/syntax"
)

// opcode identifies a VM instruction.
type opcode uint8

const (
	// opChar consumes one codepoint equal to inst.r.
	opChar opcode = iota + 1
	// opAny consumes any one codepoint.
	opAny
	// opClass consumes one codepoint matching inst.class.
	opClass
	// opAssert is a zero-width anchor test.
	opAssert
	// opSplit tries pc=x first, keeping pc=y as a choice point.
	opSplit
	// opJmp continues at pc=x.
	opJmp
	// opSave writes the cursor into register inst.arg. Emitted at
	// capturing-group entry to record the span start.
	opSave
	// opCapture commits group inst.arg: copies the group's entry
	// register and the cursor into its two capture slots. Emitted at
	// group exit so the slots keep their previous span until the body
	// has fully succeeded.
	opCapture
	// opBackref consumes text equal to capture group inst.arg.
	opBackref
	// opSetMark records the cursor in loop register inst.arg. Emitted
	// at the entry of every unbounded repetition.
	opSetMark
	// opLoop is the back edge of an unbounded repetition: it fails the
	// current path when the iteration consumed no input (the zero-width
	// guard), otherwise updates the register and jumps to pc=x.
	opLoop
	// opMatch reports overall success.
	opMatch
)

// inst is a single VM instruction. Only the fields its opcode uses are
// populated.
type inst struct {
	op     opcode
	x, y   int // jump targets; opSplit prefers x
	arg    int // capture slot, group index, or loop register
	r      rune
	class  *syntax.Class
	assert syntax.AnchorKind
}

// Prog is the compiled, immutable form of a pattern.
type Prog struct {
	insts []inst

	// numCaps is the number of capture slots: two per group, plus two
	// for the overall match (slots 0 and 1).
	numCaps int

	// numMarks is the number of loop registers used by zero-width
	// guards.
	numMarks int

	// numGroups is carried over from the pattern for result shaping.
	numGroups int
}

// NumGroups returns the pattern's capturing group count.
func (p *Prog) NumGroups() int { return p.numGroups }

// Size returns the instruction count, exposed for introspection and
// tests.
func (p *Prog) Size() int { return len(p.insts) }
