// Package retrace provides a backtracking regex engine with capturing
// groups and backreferences.
//
// The dialect covers anchors (^ $ \A \z \Z \G \b \B), alternation,
// capturing and non-capturing groups, character classes with Unicode
// general-category references (\p{Lu}), greedy and lazy quantifiers,
// and backreferences. Backreferences make the language non-regular, so
// matching is a depth-first backtracking search; a configurable step
// budget bounds catastrophic cases and surfaces them as
// ErrResourceExhausted instead of unbounded runtime.
//
// All offsets are codepoint offsets into the subject.
//
// Basic usage:
//
//	re, err := retrace.Compile(`(\w+) and \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := re.Find("fish and fish")
//	if m != nil {
//	    fmt.Println(m.Text())       // "fish and fish"
//	    fmt.Println(m.GroupText(1)) // "fish"
//	}
//
// A compiled Regex is immutable and safe for concurrent use; every
// match call owns its own search state.
package retrace

import (
	"fmt"

	"github.com/coregx/retrace/backtrack"
	"github.com/coregx/retrace/literal"
	"github.com/coregx/retrace/prefilter"
	"github.com/coregx/retrace/syntax"
)

// Engine errors, re-exported for callers that only import the root
// package.
var (
	// ErrResourceExhausted is returned when a match attempt crosses the
	// configured step budget. It is distinct from a no-match outcome.
	ErrResourceExhausted = backtrack.ErrResourceExhausted

	// ErrTooComplex is returned by Compile when the pattern exceeds the
	// configured program size limit.
	ErrTooComplex = backtrack.ErrTooComplex
)

// Regex is a compiled regular expression. It is immutable after Compile
// and safe for concurrent use from multiple goroutines.
type Regex struct {
	pattern  string
	ast      *syntax.Pattern
	matcher  *backtrack.Matcher
	filter   prefilter.Prefilter
	anchored bool
}

// Compile compiles a pattern with DefaultConfig. It fails with a
// *syntax.Error identifying the failure position and discriminant, or
// with ErrTooComplex.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with explicit resource limits.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := syntax.ParseWithMaxRepeat(pattern, config.MaxRepeatCount)
	if err != nil {
		return nil, err
	}
	prog, err := backtrack.CompileWithLimit(ast, config.MaxProgSize)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern:  pattern,
		ast:      ast,
		matcher:  backtrack.NewMatcher(prog, config.MaxSteps),
		anchored: ast.AnchoredStart(),
	}

	// Anchored patterns never scan, so a prefilter buys nothing.
	if config.EnablePrefilter && !re.anchored {
		ex := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: 64,
			MaxClassSize:  10,
		})
		seq := ex.ExtractPrefixes(ast)
		re.filter = prefilter.Build(seq, config.MinLiteralLen, config.MaxLiterals)
	}

	return re, nil
}

// MustCompile is Compile but panics on error, for patterns known to be
// valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("retrace: Compile(%q): %v", pattern, err))
	}
	return re
}

// String returns the source pattern text.
func (re *Regex) String() string {
	return re.pattern
}

// NumGroups returns the number of capturing groups. Group indices are
// exactly 1..NumGroups, numbered by opening-parenthesis position.
func (re *Regex) NumGroups() int {
	return re.ast.NumGroups
}
