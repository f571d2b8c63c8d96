package syntax

// TokenKind identifies a lexical unit produced by the tokenizer.
type TokenKind uint8

const (
	// TokLiteral is a literal codepoint, including escaped punctuation.
	TokLiteral TokenKind = iota + 1
	// TokLParen is '('.
	TokLParen
	// TokGroupNonCap is the three-codepoint '(?:' opener.
	TokGroupNonCap
	// TokRParen is ')'.
	TokRParen
	// TokAlt is '|'.
	TokAlt
	// TokLBracket is '[' opening a character class.
	TokLBracket
	// TokRBracket is ']'.
	TokRBracket
	// TokCaret is '^'; the parser resolves anchor vs class negation vs
	// literal by grammatical position.
	TokCaret
	// TokDollar is '$'.
	TokDollar
	// TokDash is '-'; a range marker inside a class, a literal outside.
	TokDash
	// TokDot is '.'.
	TokDot
	// TokStar, TokPlus, TokQuest are the one-codepoint quantifiers.
	TokStar
	TokPlus
	TokQuest
	// TokRepeat is a well-formed {m}, {m,} or {m,n} range quantifier.
	TokRepeat
	// TokClass is one of \d \D \w \W.
	TokClass
	// TokCategory is \p{Name}; Name is validated by the parser.
	TokCategory
	// TokAnchorEsc is one of \b \B \A \z \Z \G.
	TokAnchorEsc
	// TokBackref is '\' followed by a digit run.
	TokBackref
)

// Token is a single lexical unit. Pos is the codepoint offset of the
// token's first codepoint in the pattern text.
type Token struct {
	Kind TokenKind
	Pos  int

	// Rune is the codepoint of a TokLiteral.
	Rune rune

	// Min and Max carry TokRepeat bounds; Max == -1 means unbounded.
	Min, Max int

	// Index carries a TokBackref group index.
	Index int

	// Builtin carries a TokClass shorthand.
	Builtin BuiltinClass

	// Anchor carries a TokAnchorEsc assertion.
	Anchor AnchorKind

	// Name carries a TokCategory category name.
	Name string
}

// repeatBoundCap keeps digit runs in {m,n} from overflowing; any bound
// above it is rejected by the parser's repeat cap anyway.
const repeatBoundCap = 1 << 30

// tokenize scans the pattern left to right into a flat token sequence.
// It tracks whether the cursor is inside a bracket expression because
// the set of meta characters differs there: inside a class only ']',
// '-', '^' and escapes are special.
func tokenize(pattern string) ([]Token, *Error) {
	src := []rune(pattern)
	toks := make([]Token, 0, len(src))
	inClass := false

	for pos := 0; pos < len(src); {
		r := src[pos]
		if !ValidChar(r) {
			return nil, lexErr(ErrBadCodepoint, pos)
		}

		if r == '\\' {
			tok, width, err := scanEscape(src, pos, inClass)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos += width
			continue
		}

		if inClass {
			switch r {
			case ']':
				toks = append(toks, Token{Kind: TokRBracket, Pos: pos})
				inClass = false
			case '^':
				toks = append(toks, Token{Kind: TokCaret, Pos: pos})
			case '-':
				toks = append(toks, Token{Kind: TokDash, Pos: pos})
			default:
				toks = append(toks, Token{Kind: TokLiteral, Pos: pos, Rune: r})
			}
			pos++
			continue
		}

		switch r {
		case '(':
			if pos+1 < len(src) && src[pos+1] == '?' {
				if pos+2 < len(src) && src[pos+2] == ':' {
					toks = append(toks, Token{Kind: TokGroupNonCap, Pos: pos})
					pos += 3
					continue
				}
				return nil, synErr(ErrBadGroupModifier, pos)
			}
			toks = append(toks, Token{Kind: TokLParen, Pos: pos})
		case ')':
			toks = append(toks, Token{Kind: TokRParen, Pos: pos})
		case '|':
			toks = append(toks, Token{Kind: TokAlt, Pos: pos})
		case '[':
			toks = append(toks, Token{Kind: TokLBracket, Pos: pos})
			inClass = true
		case ']':
			toks = append(toks, Token{Kind: TokRBracket, Pos: pos})
		case '^':
			toks = append(toks, Token{Kind: TokCaret, Pos: pos})
		case '$':
			toks = append(toks, Token{Kind: TokDollar, Pos: pos})
		case '.':
			toks = append(toks, Token{Kind: TokDot, Pos: pos})
		case '*':
			toks = append(toks, Token{Kind: TokStar, Pos: pos})
		case '+':
			toks = append(toks, Token{Kind: TokPlus, Pos: pos})
		case '?':
			toks = append(toks, Token{Kind: TokQuest, Pos: pos})
		case '-':
			toks = append(toks, Token{Kind: TokDash, Pos: pos})
		case '{':
			if tok, width, ok := scanRepeat(src, pos); ok {
				toks = append(toks, tok)
				pos += width
				continue
			}
			// Not a well-formed range quantifier: a literal brace.
			toks = append(toks, Token{Kind: TokLiteral, Pos: pos, Rune: r})
		default:
			toks = append(toks, Token{Kind: TokLiteral, Pos: pos, Rune: r})
		}
		pos++
	}

	return toks, nil
}

// scanEscape consumes an escape sequence starting at the backslash.
// Inside a class, anchor escapes and backreferences are not lexical
// units; only \d \D \w \W, \p{Name} and escaped punctuation are.
func scanEscape(src []rune, pos int, inClass bool) (Token, int, *Error) {
	if pos+1 >= len(src) {
		return Token{}, 0, lexErr(ErrTrailingBackslash, pos)
	}
	r := src[pos+1]

	switch r {
	case 'd':
		return Token{Kind: TokClass, Pos: pos, Builtin: BuiltinDigit}, 2, nil
	case 'D':
		return Token{Kind: TokClass, Pos: pos, Builtin: BuiltinNotDigit}, 2, nil
	case 'w':
		return Token{Kind: TokClass, Pos: pos, Builtin: BuiltinWord}, 2, nil
	case 'W':
		return Token{Kind: TokClass, Pos: pos, Builtin: BuiltinNotWord}, 2, nil
	case 'p':
		return scanCategory(src, pos)
	}

	if !inClass {
		switch r {
		case 'b':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorWordBoundary}, 2, nil
		case 'B':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorNoWordBoundary}, 2, nil
		case 'A':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorBeginText}, 2, nil
		case 'z':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorEndText}, 2, nil
		case 'Z':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorEndTextOptNL}, 2, nil
		case 'G':
			return Token{Kind: TokAnchorEsc, Pos: pos, Anchor: AnchorMatchStart}, 2, nil
		}
		if r >= '0' && r <= '9' {
			index := 0
			width := 1
			for pos+width < len(src) && isDigit(src[pos+width]) {
				if index < repeatBoundCap {
					index = index*10 + int(src[pos+width]-'0')
				}
				width++
			}
			return Token{Kind: TokBackref, Pos: pos, Index: index}, width, nil
		}
	}

	if isLetter(r) || (inClass && isDigit(r)) {
		// Unrecognized letter escapes are reserved; digit escapes have
		// no meaning inside a class.
		return Token{}, 0, lexErr(ErrBadEscape, pos)
	}

	return Token{Kind: TokLiteral, Pos: pos, Rune: r}, 2, nil
}

// scanCategory consumes \p{Letters}. pos is the backslash offset.
func scanCategory(src []rune, pos int) (Token, int, *Error) {
	i := pos + 2
	if i >= len(src) || src[i] != '{' {
		return Token{}, 0, lexErr(ErrBadCategorySyntax, pos)
	}
	i++
	start := i
	for i < len(src) && isLetter(src[i]) {
		i++
	}
	if i == start || i >= len(src) || src[i] != '}' {
		return Token{}, 0, lexErr(ErrBadCategorySyntax, pos)
	}
	name := string(src[start:i])
	return Token{Kind: TokCategory, Pos: pos, Name: name}, i + 1 - pos, nil
}

// scanRepeat tries to read {m}, {m,} or {m,n} starting at the brace.
// ok is false when the text does not have that shape, in which case the
// brace is an ordinary literal.
func scanRepeat(src []rune, pos int) (Token, int, bool) {
	i := pos + 1
	min, i, ok := scanDigits(src, i)
	if !ok {
		return Token{}, 0, false
	}
	max := min
	if i < len(src) && src[i] == ',' {
		i++
		if n, j, ok := scanDigits(src, i); ok {
			max = n
			i = j
		} else {
			max = -1
		}
	}
	if i >= len(src) || src[i] != '}' {
		return Token{}, 0, false
	}
	return Token{Kind: TokRepeat, Pos: pos, Min: min, Max: max}, i + 1 - pos, true
}

func scanDigits(src []rune, i int) (int, int, bool) {
	n := 0
	start := i
	for i < len(src) && isDigit(src[i]) {
		if n < repeatBoundCap {
			n = n*10 + int(src[i]-'0')
		}
		i++
	}
	return n, i, i > start
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ValidChar reports whether r is admitted by the grammar's Char
// production: tab, CR, LF, and the printable planes. In pattern text
// anything else is a structural error; '.' matches exactly this set.
func ValidChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
