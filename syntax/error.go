package syntax

import "fmt"

// ErrorKind separates the two compile-time failure classes: lexical
// errors come from the tokenizer (bad escapes, disallowed codepoints),
// syntax errors from the parser (structural violations).
type ErrorKind uint8

const (
	// KindLexical marks tokenizer failures.
	KindLexical ErrorKind = iota + 1
	// KindSyntax marks parser failures.
	KindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindSyntax:
		return "syntax error"
	}
	return "error"
}

// ErrorCode is the discriminant of a compile-time error.
type ErrorCode string

// Tokenizer error codes.
const (
	// ErrBadEscape reports an escape with an unrecognized letter.
	ErrBadEscape ErrorCode = "unrecognized escape sequence"
	// ErrTrailingBackslash reports a pattern ending in a lone backslash.
	ErrTrailingBackslash ErrorCode = "trailing backslash"
	// ErrBadCategorySyntax reports a malformed or unterminated \p{...}.
	ErrBadCategorySyntax ErrorCode = "malformed \\p{...} category reference"
	// ErrBadCodepoint reports a codepoint the pattern grammar does not
	// admit (controls other than tab/CR/LF, surrogates, U+FFFE, U+FFFF).
	ErrBadCodepoint ErrorCode = "codepoint not allowed in pattern"
)

// Parser error codes.
const (
	// ErrUnclosedGroup reports a '(' without a matching ')'.
	ErrUnclosedGroup ErrorCode = "missing closing parenthesis"
	// ErrUnexpectedParen reports a ')' without a matching '('.
	ErrUnexpectedParen ErrorCode = "unexpected closing parenthesis"
	// ErrBadGroupModifier reports '(?' followed by anything but ':'.
	ErrBadGroupModifier ErrorCode = "unsupported group modifier"
	// ErrEmptyBranch reports an empty alternation branch or group.
	ErrEmptyBranch ErrorCode = "empty alternation branch"
	// ErrDanglingQuantifier reports a quantifier with no preceding atom.
	ErrDanglingQuantifier ErrorCode = "quantifier without preceding atom"
	// ErrInvalidRepeatBounds reports {m,n} with m > n.
	ErrInvalidRepeatBounds ErrorCode = "invalid repeat bounds"
	// ErrRepeatTooLarge reports a repeat bound beyond the configured cap.
	ErrRepeatTooLarge ErrorCode = "repeat bound too large"
	// ErrUnterminatedClass reports a '[' without a matching ']'.
	ErrUnterminatedClass ErrorCode = "missing closing bracket"
	// ErrEmptyClass reports '[]' or '[^]'.
	ErrEmptyClass ErrorCode = "empty character class"
	// ErrInvalidClassRange reports a range with lo > hi, like [z-a].
	ErrInvalidClassRange ErrorCode = "invalid character class range"
	// ErrUnknownCategory reports a \p{Name} the classifier does not know.
	ErrUnknownCategory ErrorCode = "unknown Unicode category"
	// ErrBackrefZero reports \0.
	ErrBackrefZero ErrorCode = "backreference index is zero"
	// ErrBackrefOutOfRange reports a backreference to a group index the
	// pattern never declares.
	ErrBackrefOutOfRange ErrorCode = "backreference to undeclared group"
	// ErrUnexpectedToken reports trailing or misplaced input the grammar
	// has no production for.
	ErrUnexpectedToken ErrorCode = "unexpected token"
)

// Error is a compile-time pattern error. Pos is the codepoint offset
// into the pattern text at which the problem was detected.
type Error struct {
	Kind ErrorKind
	Code ErrorCode
	Pos  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("retrace: %s: %s at position %d", e.Kind, e.Code, e.Pos)
}

func lexErr(code ErrorCode, pos int) *Error {
	return &Error{Kind: KindLexical, Code: code, Pos: pos}
}

func synErr(code ErrorCode, pos int) *Error {
	return &Error{Kind: KindSyntax, Code: code, Pos: pos}
}
