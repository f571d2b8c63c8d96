package syntax

import "unicode"

// LookupCategory resolves a Unicode general-category name (the one- and
// two-letter forms: "L", "Lu", "Nd", "P", "Zs", ...) to its range
// table. The parser calls this to validate \p{Name} references, so the
// matcher only ever sees names that resolved successfully.
func LookupCategory(name string) (*unicode.RangeTable, bool) {
	tab, ok := unicode.Categories[name]
	return tab, ok
}

// Belongs reports whether r belongs to the named general category.
// Unknown names report false; compile-time validation is expected to
// have rejected them already.
func Belongs(r rune, name string) bool {
	tab, ok := LookupCategory(name)
	return ok && unicode.Is(tab, r)
}
