package syntax

// DefaultMaxRepeat is the cap on {m,n} bounds when none is configured.
// Bounded repetitions are unrolled during compilation, so the cap also
// bounds compiled program growth.
const DefaultMaxRepeat = 1000

// Parse compiles pattern text into a Pattern, or fails with a *Error
// carrying the failure position and discriminant. Parsing is
// deterministic: identical text always yields a structurally identical
// AST with identical capture numbering.
func Parse(pattern string) (*Pattern, error) {
	return ParseWithMaxRepeat(pattern, DefaultMaxRepeat)
}

// ParseWithMaxRepeat is Parse with an explicit cap on range-quantifier
// bounds.
func ParseWithMaxRepeat(pattern string, maxRepeat int) (*Pattern, error) {
	toks, lexFail := tokenize(pattern)
	if lexFail != nil {
		return nil, lexFail
	}

	p := &parser{
		toks:      toks,
		srcLen:    len([]rune(pattern)),
		maxRepeat: maxRepeat,
	}

	var items []*Node
	// A caret at the very start of the whole pattern is the
	// start-of-string anchor; everywhere else outside a class it is an
	// ordinary codepoint.
	if len(toks) > 0 && toks[0].Kind == TokCaret {
		p.pos = 1
		items = append(items, &Node{Op: OpAnchor, Anchor: AnchorBeginText})
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	items = append(items, expr)

	if tok, ok := p.peek(); ok {
		if tok.Kind == TokRParen {
			return nil, synErr(ErrUnexpectedParen, tok.Pos)
		}
		return nil, synErr(ErrUnexpectedToken, tok.Pos)
	}

	for _, ref := range p.backrefs {
		if ref.Index > p.ngroups {
			return nil, synErr(ErrBackrefOutOfRange, ref.Pos)
		}
	}

	root := expr
	if len(items) > 1 {
		root = &Node{Op: OpSequence, Sub: items}
	}
	return &Pattern{Root: root, NumGroups: p.ngroups}, nil
}

// parser is a recursive-descent parser over the token stream. Grammar
// productions map one-to-one onto methods: expression handles '|',
// sequence concatenation, item a single quantifiable atom.
type parser struct {
	toks      []Token
	pos       int
	srcLen    int
	ngroups   int
	maxRepeat int
	backrefs  []Token
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) peekKind(k TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == k
}

func (p *parser) peekKindAt(offset int, k TokenKind) bool {
	i := p.pos + offset
	return i < len(p.toks) && p.toks[i].Kind == k
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

func (p *parser) accept(k TokenKind) bool {
	if p.peekKind(k) {
		p.pos++
		return true
	}
	return false
}

// curPos is the position for "ran out of input here" diagnostics.
func (p *parser) curPos() int {
	if tok, ok := p.peek(); ok {
		return tok.Pos
	}
	return p.srcLen
}

func (p *parser) expression() (*Node, *Error) {
	branch, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if !p.peekKind(TokAlt) {
		return branch, nil
	}

	branches := []*Node{branch}
	for p.accept(TokAlt) {
		b, err := p.sequence()
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return &Node{Op: OpAlternate, Sub: branches}, nil
}

func (p *parser) sequence() (*Node, *Error) {
	var items []*Node
	for {
		n, err := p.item()
		if err != nil {
			return nil, err
		}
		if n == nil {
			break
		}
		items = append(items, n)
	}
	if len(items) == 0 {
		return nil, synErr(ErrEmptyBranch, p.curPos())
	}
	if len(items) == 1 {
		return items[0], nil
	}
	return &Node{Op: OpSequence, Sub: items}, nil
}

// item parses one quantifiable atom, or returns nil at a branch
// boundary (')', '|', or end of input).
func (p *parser) item() (*Node, *Error) {
	tok, ok := p.peek()
	if !ok {
		return nil, nil
	}

	var atom *Node
	switch tok.Kind {
	case TokRParen, TokAlt:
		return nil, nil

	case TokLParen, TokGroupNonCap:
		return p.group()

	case TokStar, TokPlus, TokQuest, TokRepeat:
		return nil, synErr(ErrDanglingQuantifier, tok.Pos)

	case TokLBracket:
		p.next()
		cls, err := p.characterGroup(tok.Pos)
		if err != nil {
			return nil, err
		}
		atom = &Node{Op: OpClass, Class: cls}

	case TokRBracket:
		return nil, synErr(ErrUnexpectedToken, tok.Pos)

	case TokDot:
		p.next()
		atom = &Node{Op: OpAnyChar}

	case TokDollar:
		p.next()
		atom = &Node{Op: OpAnchor, Anchor: AnchorEndText}

	case TokAnchorEsc:
		p.next()
		atom = &Node{Op: OpAnchor, Anchor: tok.Anchor}

	case TokClass:
		p.next()
		atom = &Node{Op: OpClass, Class: singleClass(tok.Builtin)}

	case TokCategory:
		p.next()
		tab, known := LookupCategory(tok.Name)
		if !known {
			return nil, synErr(ErrUnknownCategory, tok.Pos)
		}
		atom = &Node{Op: OpClass, Class: &Class{
			Categories: []Category{{Name: tok.Name, Tab: tab}},
		}}

	case TokBackref:
		p.next()
		if tok.Index == 0 {
			return nil, synErr(ErrBackrefZero, tok.Pos)
		}
		p.backrefs = append(p.backrefs, tok)
		atom = &Node{Op: OpBackref, Index: tok.Index}

	case TokCaret:
		// Mid-pattern caret: an ordinary codepoint.
		p.next()
		atom = &Node{Op: OpLiteral, Rune: '^'}

	case TokDash:
		p.next()
		atom = &Node{Op: OpLiteral, Rune: '-'}

	default:
		p.next()
		atom = &Node{Op: OpLiteral, Rune: tok.Rune}
	}

	return p.quantify(atom)
}

// group parses a parenthesized subexpression. The capture index is
// assigned before descending so that nested groups receive higher
// indices, preserving numbering by opening-parenthesis position.
func (p *parser) group() (*Node, *Error) {
	opener := p.next()
	capIndex := 0
	if opener.Kind == TokLParen {
		p.ngroups++
		capIndex = p.ngroups
	}

	body, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokRParen) {
		return nil, synErr(ErrUnclosedGroup, opener.Pos)
	}

	return p.quantify(&Node{Op: OpGroup, Sub: []*Node{body}, Cap: capIndex})
}

// quantify wraps atom in an OpRepeat if a quantifier follows, consuming
// a trailing '?' as the lazy marker.
func (p *parser) quantify(atom *Node) (*Node, *Error) {
	tok, ok := p.peek()
	if !ok {
		return atom, nil
	}

	var min, max int
	switch tok.Kind {
	case TokStar:
		min, max = 0, -1
	case TokPlus:
		min, max = 1, -1
	case TokQuest:
		min, max = 0, 1
	case TokRepeat:
		min, max = tok.Min, tok.Max
		if max != -1 && min > max {
			return nil, synErr(ErrInvalidRepeatBounds, tok.Pos)
		}
		if min > p.maxRepeat || max > p.maxRepeat {
			return nil, synErr(ErrRepeatTooLarge, tok.Pos)
		}
	default:
		return atom, nil
	}
	p.next()

	lazy := p.accept(TokQuest)
	return &Node{Op: OpRepeat, Sub: []*Node{atom}, Min: min, Max: max, Lazy: lazy}, nil
}

// characterGroup parses the inside of a bracket expression; the opening
// '[' has already been consumed. openPos is its position, used for
// unterminated-class diagnostics.
func (p *parser) characterGroup(openPos int) (*Class, *Error) {
	cls := &Class{Negated: p.accept(TokCaret)}
	seen := 0

	for {
		tok, ok := p.peek()
		if !ok {
			return nil, synErr(ErrUnterminatedClass, openPos)
		}

		switch tok.Kind {
		case TokRBracket:
			p.next()
			if seen == 0 {
				return nil, synErr(ErrEmptyClass, openPos)
			}
			return cls, nil

		case TokClass:
			p.next()
			cls.Builtins = append(cls.Builtins, tok.Builtin)

		case TokCategory:
			p.next()
			tab, known := LookupCategory(tok.Name)
			if !known {
				return nil, synErr(ErrUnknownCategory, tok.Pos)
			}
			cls.Categories = append(cls.Categories, Category{Name: tok.Name, Tab: tab})

		case TokDash:
			// A dash with no left endpoint is a literal '-'.
			p.next()
			cls.Ranges = append(cls.Ranges, RuneRange{Lo: '-', Hi: '-'})

		default:
			lo := classRune(p.next())
			// "a-z" is a range only when a member codepoint follows the
			// dash; "[a-]" keeps both as literals.
			if p.peekKind(TokDash) && (p.peekKindAt(1, TokLiteral) || p.peekKindAt(1, TokCaret)) {
				dash := p.next()
				hi := classRune(p.next())
				if lo > hi {
					return nil, synErr(ErrInvalidClassRange, dash.Pos)
				}
				cls.Ranges = append(cls.Ranges, RuneRange{Lo: lo, Hi: hi})
			} else {
				cls.Ranges = append(cls.Ranges, RuneRange{Lo: lo, Hi: lo})
			}
		}
		seen++
	}
}

// classRune maps a token inside a bracket expression to the codepoint
// it denotes.
func classRune(tok Token) rune {
	if tok.Kind == TokCaret {
		return '^'
	}
	return tok.Rune
}
