package retrace

import (
	"testing"
)

func spansOf(matches []*Match) [][2]int {
	out := make([][2]int, len(matches))
	for i, m := range matches {
		out[i] = [2]int{m.Start, m.End}
	}
	return out
}

func TestFind(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		span    [2]int // -1,-1 means no match
	}{
		{`\d+`, "age: 42 years", [2]int{5, 7}},
		{`foo`, "barfoobar", [2]int{3, 6}},
		{`foo`, "barbar", [2]int{-1, -1}},
		{`^bar`, "barfoo", [2]int{0, 3}},
		{`^bar`, "foobar", [2]int{-1, -1}},
		{`o+`, "foo boo", [2]int{1, 3}}, // leftmost match wins
		{`a*`, "bbb", [2]int{0, 0}},
		{`x$`, "x yx", [2]int{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.subject, func(t *testing.T) {
			m, err := MustCompile(tt.pattern).Find(tt.subject)
			if err != nil {
				t.Fatal(err)
			}
			if tt.span == [2]int{-1, -1} {
				if m != nil {
					t.Fatalf("matched [%d,%d), want none", m.Start, m.End)
				}
				return
			}
			if m == nil {
				t.Fatalf("no match, want %v", tt.span)
			}
			if m.Start != tt.span[0] || m.End != tt.span[1] {
				t.Errorf("span = [%d,%d), want [%d,%d)", m.Start, m.End, tt.span[0], tt.span[1])
			}
		})
	}
}

func TestFindMultibyteOffsets(t *testing.T) {
	// Offsets are codepoint offsets, so the match after "héllo " starts
	// at 6 even though é is two bytes.
	m, err := MustCompile(`\d+`).Find("héllo 42")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.Start != 6 || m.End != 8 {
		t.Fatalf("span = %+v, want [6,8)", m)
	}
	if m.Text() != "42" {
		t.Errorf("Text() = %q", m.Text())
	}

	m, err = MustCompile(`llo`).Find("héllo")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.Start != 2 || m.End != 5 {
		t.Fatalf("span = %+v, want [2,5)", m)
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		n       int
		want    [][2]int
	}{
		{`\d+`, "a1 b22 c333", -1, [][2]int{{1, 2}, {4, 6}, {9, 12}}},
		{`\d+`, "a1 b22 c333", 2, [][2]int{{1, 2}, {4, 6}}},
		{`\d+`, "a1 b22 c333", 0, nil},
		{`\d+`, "no digits", -1, nil},
		// Empty matches advance by one codepoint.
		{`a*`, "baa", -1, [][2]int{{0, 0}, {1, 3}, {3, 3}}},
		{`b?`, "ab", -1, [][2]int{{0, 0}, {1, 2}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.subject, func(t *testing.T) {
			ms, err := MustCompile(tt.pattern).FindAll(tt.subject, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			got := spansOf(ms)
			if len(got) != len(tt.want) {
				t.Fatalf("spans = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindAllNonOverlapping(t *testing.T) {
	ms, err := MustCompile(`aa`).FindAll("aaaa", -1)
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{0, 2}, {2, 4}}
	got := spansOf(ms)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("spans = %v, want %v", got, want)
	}
}

func TestPrefilterParity(t *testing.T) {
	// The prefilter may only skip impossible start positions, never
	// change results.
	patterns := []string{
		`foo\d+`,
		`(foo|bar)x`,
		`x`,
		`héllo`,
		`err(or)?:`,
		`foo|oo|o`,
		`abc|bc|c`,
	}
	subjects := []string{
		"",
		"foo1 bar2 foox barx",
		"no hits here",
		"xx héllo xx foo42",
		"error: and err: and nothing",
		"ffoo foo9",
		"foo",
		"xfoo oof",
		"abc",
		"xxabc cb",
	}

	off := DefaultConfig()
	off.EnablePrefilter = false

	for _, pattern := range patterns {
		filtered := MustCompile(pattern)
		plain, err := CompileWithConfig(pattern, off)
		if err != nil {
			t.Fatal(err)
		}
		for _, subject := range subjects {
			a, err := filtered.FindAll(subject, -1)
			if err != nil {
				t.Fatal(err)
			}
			b, err := plain.FindAll(subject, -1)
			if err != nil {
				t.Fatal(err)
			}
			ga, gb := spansOf(a), spansOf(b)
			if len(ga) != len(gb) {
				t.Errorf("%q on %q: filtered %v, plain %v", pattern, subject, ga, gb)
				continue
			}
			for i := range ga {
				if ga[i] != gb[i] {
					t.Errorf("%q on %q: span %d filtered %v, plain %v", pattern, subject, i, ga[i], gb[i])
				}
			}
		}
	}
}

func TestFindOverlappingAlternationLeftmost(t *testing.T) {
	// Branches that are suffixes of each other: the scan must report the
	// leftmost start, not the start of the earliest-ending literal.
	tests := []struct {
		pattern string
		subject string
		want    [2]int
	}{
		{`foo|oo|o`, "foo", [2]int{0, 3}},
		{`foo|oo|o`, "xoofoo", [2]int{1, 3}},
		{`abc|bc|c`, "abc", [2]int{0, 3}},
		{`abc|bc|c`, "x bca abc", [2]int{2, 4}},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		m, err := re.Find(tt.subject)
		if err != nil {
			t.Fatal(err)
		}
		if m == nil {
			t.Errorf("%q on %q: no match, want %v", tt.pattern, tt.subject, tt.want)
			continue
		}
		if got := [2]int{m.Start, m.End}; got != tt.want {
			t.Errorf("%q on %q: got %v, want %v", tt.pattern, tt.subject, got, tt.want)
		}
	}
}

func TestIsMatchLiteralAlternation(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    bool
	}{
		{`foo|bar`, "xxbarxx", true},
		{`foo|bar`, "xxbaxx", false},
		{`foo|bar`, "", false},
		{`foo$`, "foox", false},
		{`foo$`, "xfoo", true},
		{`\bcat\b`, "concat", false},
		{`\bcat\b`, "a cat", true},
	}
	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		got, err := re.IsMatch(tt.subject)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%q on %q: IsMatch = %v, want %v", tt.pattern, tt.subject, got, tt.want)
		}
	}
}

func TestAnchoredSearchShortCircuits(t *testing.T) {
	// An anchored pattern failing at offset 0 must not match later.
	re := MustCompile(`^foo`)
	m, err := re.Find("barfoo")
	if err != nil {
		t.Fatal(err)
	}
	if m != nil {
		t.Errorf("matched %v, want none", [2]int{m.Start, m.End})
	}

	ms, err := re.FindAll("foofoo", -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0].Start != 0 {
		t.Errorf("spans = %v, want [[0,3)]", spansOf(ms))
	}
}

func TestFindEmptySubject(t *testing.T) {
	if m, _ := MustCompile(`a*`).Find(""); m == nil || m.Start != 0 || m.End != 0 {
		t.Errorf("a* on empty = %+v, want [0,0)", m)
	}
	if m, _ := MustCompile(`a+`).Find(""); m != nil {
		t.Error("a+ matched the empty subject")
	}
}
