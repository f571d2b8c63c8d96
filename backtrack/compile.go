package backtrack

import (
	"github.com/coregx/retrace/syntax"
)

// DefaultMaxProgSize caps compiled program growth. Bounded repetitions
// are unrolled, so pathological nestings like (a{500}){500} would
// otherwise explode quadratically.
const DefaultMaxProgSize = 10000

// Compile lowers a parsed pattern into a backtracking program using the
// default program size limit.
func Compile(p *syntax.Pattern) (*Prog, error) {
	return CompileWithLimit(p, DefaultMaxProgSize)
}

// CompileWithLimit is Compile with an explicit instruction limit.
// Returns ErrTooComplex when the limit is exceeded.
func CompileWithLimit(p *syntax.Pattern, maxInsts int) (*Prog, error) {
	c := &compiler{
		prog: &Prog{
			numCaps:   2 * (p.NumGroups + 1),
			numGroups: p.NumGroups,
		},
		maxInsts: maxInsts,
	}
	if err := c.node(p.Root); err != nil {
		return nil, err
	}
	if _, err := c.emit(inst{op: opMatch}); err != nil {
		return nil, err
	}
	return c.prog, nil
}

type compiler struct {
	prog     *Prog
	maxInsts int
}

// emit appends an instruction and returns its pc.
func (c *compiler) emit(in inst) (int, error) {
	if len(c.prog.insts) >= c.maxInsts {
		return 0, ErrTooComplex
	}
	c.prog.insts = append(c.prog.insts, in)
	return len(c.prog.insts) - 1, nil
}

func (c *compiler) pc() int {
	return len(c.prog.insts)
}

func (c *compiler) node(n *syntax.Node) error {
	switch n.Op {
	case syntax.OpLiteral:
		_, err := c.emit(inst{op: opChar, r: n.Rune})
		return err

	case syntax.OpAnyChar:
		_, err := c.emit(inst{op: opAny})
		return err

	case syntax.OpClass:
		_, err := c.emit(inst{op: opClass, class: n.Class})
		return err

	case syntax.OpAnchor:
		_, err := c.emit(inst{op: opAssert, assert: n.Anchor})
		return err

	case syntax.OpBackref:
		_, err := c.emit(inst{op: opBackref, arg: n.Index})
		return err

	case syntax.OpSequence:
		for _, sub := range n.Sub {
			if err := c.node(sub); err != nil {
				return err
			}
		}
		return nil

	case syntax.OpGroup:
		if n.Cap == 0 {
			return c.node(n.Sub[0])
		}
		// Record the span start in the group's entry register; the
		// capture slots themselves are written only when the body exits.
		entry := c.prog.numCaps + n.Cap - 1
		if _, err := c.emit(inst{op: opSave, arg: entry}); err != nil {
			return err
		}
		if err := c.node(n.Sub[0]); err != nil {
			return err
		}
		_, err := c.emit(inst{op: opCapture, arg: n.Cap})
		return err

	case syntax.OpAlternate:
		return c.alternate(n)

	case syntax.OpRepeat:
		return c.repeat(n)
	}
	return nil
}

// alternate emits branches in textual order: each branch but the last
// is guarded by a split whose second target is the next branch, so the
// engine tries branches left to right.
func (c *compiler) alternate(n *syntax.Node) error {
	var jumps []int
	for i, branch := range n.Sub {
		if i == len(n.Sub)-1 {
			if err := c.node(branch); err != nil {
				return err
			}
			break
		}
		split, err := c.emit(inst{op: opSplit})
		if err != nil {
			return err
		}
		c.prog.insts[split].x = c.pc()
		if err := c.node(branch); err != nil {
			return err
		}
		jmp, err := c.emit(inst{op: opJmp})
		if err != nil {
			return err
		}
		jumps = append(jumps, jmp)
		c.prog.insts[split].y = c.pc()
	}
	end := c.pc()
	for _, jmp := range jumps {
		c.prog.insts[jmp].x = end
	}
	return nil
}

// repeat unrolls the mandatory prefix, then emits either a guarded loop
// (unbounded max) or a ladder of optionals (finite max). Greedy forms
// prefer the body at every split; lazy forms prefer the exit.
func (c *compiler) repeat(n *syntax.Node) error {
	body := n.Sub[0]
	for i := 0; i < n.Min; i++ {
		if err := c.node(body); err != nil {
			return err
		}
	}

	if n.Max == -1 {
		return c.loop(body, n.Lazy)
	}

	var splits []int
	for i := 0; i < n.Max-n.Min; i++ {
		split, err := c.emit(inst{op: opSplit})
		if err != nil {
			return err
		}
		splits = append(splits, split)
		if n.Lazy {
			c.prog.insts[split].y = c.pc()
		} else {
			c.prog.insts[split].x = c.pc()
		}
		if err := c.node(body); err != nil {
			return err
		}
	}
	exit := c.pc()
	for _, split := range splits {
		if n.Lazy {
			c.prog.insts[split].x = exit
		} else {
			c.prog.insts[split].y = exit
		}
	}
	return nil
}

// loop emits an unbounded repetition with the zero-width guard: the
// back edge compares the cursor against the loop register and abandons
// the iteration when the body consumed nothing, so (a*)* and friends
// cannot spin forever.
func (c *compiler) loop(body *syntax.Node, lazy bool) error {
	mark := c.prog.numMarks
	c.prog.numMarks++

	if _, err := c.emit(inst{op: opSetMark, arg: mark}); err != nil {
		return err
	}
	split, err := c.emit(inst{op: opSplit})
	if err != nil {
		return err
	}
	bodyStart := c.pc()
	if err := c.node(body); err != nil {
		return err
	}
	if _, err := c.emit(inst{op: opLoop, arg: mark, x: split}); err != nil {
		return err
	}
	exit := c.pc()

	if lazy {
		c.prog.insts[split].x = exit
		c.prog.insts[split].y = bodyStart
	} else {
		c.prog.insts[split].x = bodyStart
		c.prog.insts[split].y = exit
	}
	return nil
}
