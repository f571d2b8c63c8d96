package retrace_test

import (
	"errors"
	"fmt"

	"github.com/coregx/retrace"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := retrace.Compile(`\d+`)
	if err != nil {
		panic(err)
	}

	ok, _ := re.IsMatch("hello 123")
	fmt.Println(ok)
	// Output: true
}

// ExampleMustCompile demonstrates panic-on-error compilation.
func ExampleMustCompile() {
	re := retrace.MustCompile(`hello`)
	ok, _ := re.IsMatch("hello world")
	fmt.Println(ok)
	// Output: true
}

// ExampleRegex_Find demonstrates finding the first match.
func ExampleRegex_Find() {
	re := retrace.MustCompile(`\d+`)
	m, _ := re.Find("age: 42 years")
	fmt.Println(m.Text(), m.Start, m.End)
	// Output: 42 5 7
}

// ExampleRegex_FindAll demonstrates collecting every match.
func ExampleRegex_FindAll() {
	re := retrace.MustCompile(`\w+`)
	matches, _ := re.FindAll("one two three", -1)
	for _, m := range matches {
		fmt.Println(m.Text())
	}
	// Output:
	// one
	// two
	// three
}

// ExampleMatch_GroupText demonstrates capture group access.
func ExampleMatch_GroupText() {
	re := retrace.MustCompile(`(\w+)@(\w+)`)
	m, _ := re.Find("reach me at bob@example")
	fmt.Println(m.GroupText(1))
	fmt.Println(m.GroupText(2))
	// Output:
	// bob
	// example
}

// ExampleRegex_Find_backreference demonstrates matching repeated words
// with a backreference.
func ExampleRegex_Find_backreference() {
	re := retrace.MustCompile(`(\w+) \1`)
	m, _ := re.Find("it was very very good")
	fmt.Println(m.Text())
	// Output: very very
}

// ExampleCompileWithConfig demonstrates bounding the backtracking step
// budget for untrusted patterns.
func ExampleCompileWithConfig() {
	config := retrace.DefaultConfig()
	config.MaxSteps = 10_000

	re, err := retrace.CompileWithConfig(`(a+)+b`, config)
	if err != nil {
		panic(err)
	}

	_, err = re.Find("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	fmt.Println(errors.Is(err, retrace.ErrResourceExhausted))
	// Output: true
}
