package retrace

import "testing"

func TestDollarIsStrictEnd(t *testing.T) {
	// $ and \z both mean end of subject; neither tolerates a trailing
	// newline and neither matches before embedded newlines.
	for _, pattern := range []string{`foo$`, `foo\z`} {
		re := MustCompile(pattern)
		if ok, _ := re.IsMatch("foo"); !ok {
			t.Errorf("%q did not match %q", pattern, "foo")
		}
		if ok, _ := re.IsMatch("foo\n"); ok {
			t.Errorf("%q matched %q", pattern, "foo\n")
		}
		if ok, _ := re.IsMatch("foo\nbar"); ok {
			t.Errorf("%q matched %q", pattern, "foo\nbar")
		}
	}
}

func TestEndTextOptNL(t *testing.T) {
	re := MustCompile(`foo\Z`)
	for subject, want := range map[string]bool{
		"foo":      true,
		"foo\n":    true,
		"foo\n\n":  false,
		"foo\nbar": false,
		"foobar":   false,
	} {
		if ok, _ := re.IsMatch(subject); ok != want {
			t.Errorf("foo\\Z on %q = %v, want %v", subject, ok, want)
		}
	}
}

func TestCaretOnlyAnchorsAtPatternStart(t *testing.T) {
	re := MustCompile(`^foo`)
	if ok, _ := re.IsMatch("barfoo"); ok {
		t.Error("^foo matched mid-subject")
	}
	if ok, _ := re.IsMatch("foo\nfoo"); !ok {
		t.Error("^foo did not match at the start")
	}
	// ^ is no multiline marker: it never matches after a newline.
	m, _ := MustCompile(`^b`).Find("a\nb")
	if m != nil {
		t.Errorf("^b matched at %d in %q", m.Start, "a\nb")
	}

	// Mid-pattern ^ is an ordinary codepoint.
	if ok, _ := MustCompile(`a^b`).IsMatch("a^b"); !ok {
		t.Error("a^b did not match the literal caret")
	}
}

func TestBeginTextEscape(t *testing.T) {
	re := MustCompile(`\Afoo`)
	if m, _ := re.Find("xfoo"); m != nil {
		t.Error("\\Afoo matched away from the start")
	}
	if m, _ := re.Find("foox"); m == nil {
		t.Error("\\Afoo did not match at the start")
	}
}

func TestFullAnchoring(t *testing.T) {
	// ^abc$ and \Aabc\z accept exactly the string "abc".
	for _, pattern := range []string{`^abc$`, `\Aabc\z`} {
		re := MustCompile(pattern)
		if ok, _ := re.IsMatch("abc"); !ok {
			t.Errorf("%q did not match %q", pattern, "abc")
		}
		for _, subject := range []string{"", "ab", "abcd", "xabc", "abc\n"} {
			if ok, _ := re.IsMatch(subject); ok {
				t.Errorf("%q matched %q", pattern, subject)
			}
		}
	}
}

func TestWordBoundaryAnchors(t *testing.T) {
	re := MustCompile(`\bcat\b`)

	m, err := re.Find("a cat sat")
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || m.Start != 2 || m.End != 5 {
		t.Fatalf("span in %q = %+v, want [2,5)", "a cat sat", m)
	}
	if ok, _ := re.IsMatch("concatenate"); ok {
		t.Error("\\bcat\\b matched inside concatenate")
	}
	for subject, want := range map[string]bool{
		"cat":        true,
		"a cat sat":  true,
		"cat-flap":   true,
		"concat":     false,
		"cats":       false,
		"scatter":    false,
		"(cat)":      true,
		"cat_":       false, // underscore is a word codepoint
		"chat écat!": true,  // é is not, so "écat" has a boundary before the c
	} {
		if ok, _ := re.IsMatch(subject); ok != want {
			t.Errorf("\\bcat\\b on %q = %v, want %v", subject, ok, want)
		}
	}

	nb := MustCompile(`\Bcat`)
	if ok, _ := nb.IsMatch("concat"); !ok {
		t.Error("\\Bcat did not match inside a word")
	}
	if ok, _ := nb.IsMatch("cat"); ok {
		t.Error("\\Bcat matched at a boundary")
	}
}

func TestMatchStartPinsToOffset(t *testing.T) {
	// \G holds exactly where the attempt began, so MatchAt distinguishes
	// it from \A.
	re := MustCompile(`\Gfoo`)
	if m, _ := re.MatchAt("xxfoo", 2); m == nil {
		t.Error("\\Gfoo failed at its own start offset")
	}
	abs := MustCompile(`\Afoo`)
	if m, _ := abs.MatchAt("xxfoo", 2); m != nil {
		t.Error("\\Afoo held away from offset 0")
	}
}
