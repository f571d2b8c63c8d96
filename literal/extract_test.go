package literal

import (
	"testing"

	"github.com/coregx/retrace/syntax"
)

func extract(t *testing.T, pattern string) *Seq {
	t.Helper()
	return extractWith(t, pattern, DefaultConfig())
}

func extractWith(t *testing.T, pattern string, config ExtractorConfig) *Seq {
	t.Helper()
	p, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return New(config).ExtractPrefixes(p)
}

func literalStrings(seq *Seq) []string {
	out := make([]string, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		out = append(out, string(seq.Get(i).Bytes))
	}
	return out
}

func TestExtractPrefixes(t *testing.T) {
	tests := []struct {
		pattern  string
		want     []string
		complete bool
	}{
		{`abc`, []string{"abc"}, true},
		{`abc|def`, []string{"abc", "def"}, true},
		{`(foo|bar)baz`, []string{"foobaz", "barbaz"}, true},
		{`[ab]c`, []string{"ac", "bc"}, true},
		{`a+`, []string{"a"}, false},
		{`ab{2}`, []string{"ab"}, false},
		{`^foo`, []string{"foo"}, false},
		{`foo$`, []string{"foo"}, false},
		{`\Afoo\z`, []string{"foo"}, false},
		{`\bfoo\b`, []string{"foo"}, false},
		{`foo\.bar`, []string{"foo.bar"}, true},
		{`foo(bar)?`, []string{"foo"}, false},
		{`foo.*`, []string{"foo"}, false},
		{`(a)x\1`, []string{"ax"}, false},
		{`héllo`, []string{"héllo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			seq := extract(t, tt.pattern)
			got := literalStrings(seq)
			if len(got) != len(tt.want) {
				t.Fatalf("literals = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("literal %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
			if seq.allComplete() != tt.complete {
				t.Errorf("allComplete = %v, want %v", seq.allComplete(), tt.complete)
			}
		})
	}
}

func TestExtractNothingUsable(t *testing.T) {
	patterns := []string{
		`.`,
		`.foo`,
		`a*`,
		`a?bc`,
		`foo|.`,
		`[^a]bc`,
		`\d+`,
		`\p{Lu}x`,
		`[a-z]`, // 26 expansions exceed the class cap
		`\1`,
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			p, err := syntax.Parse(pattern)
			if err != nil {
				// A bare \1 does not parse; only extractable shapes matter here.
				t.Skipf("Parse(%q): %v", pattern, err)
			}
			seq := New(DefaultConfig()).ExtractPrefixes(p)
			if !seq.IsEmpty() {
				t.Errorf("extracted %q, want none", literalStrings(seq))
			}
		})
	}
}

func TestExtractTruncation(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiteralLen = 3
	seq := extractWith(t, `abcdef`, config)
	if got := literalStrings(seq); len(got) != 1 || got[0] != "abc" {
		t.Fatalf("literals = %q, want [abc]", got)
	}
	if seq.Get(0).Complete {
		t.Error("truncated literal still marked complete")
	}
}

func TestExtractCountLimit(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = 8
	seq := extractWith(t, `[ab][cd][ef][gh]`, config)
	if seq.Len() != 8 {
		t.Fatalf("Len = %d, want 8 (extension stops at the cap)", seq.Len())
	}
	if seq.allComplete() {
		t.Error("capped extraction must not claim complete literals")
	}
	for i := 0; i < seq.Len(); i++ {
		if got := len(seq.Get(i).Bytes); got != 3 {
			t.Errorf("literal %d has length %d, want 3", i, got)
		}
	}
}

func TestSeqMinLen(t *testing.T) {
	seq := extract(t, `foobar|ab`)
	if got := seq.MinLen(); got != 2 {
		t.Errorf("MinLen = %d, want 2", got)
	}
	if got := NewSeq().MinLen(); got != 0 {
		t.Errorf("empty MinLen = %d, want 0", got)
	}
}
