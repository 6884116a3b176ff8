// Package test contains helpers shared by the foldbench tests.
package test

import (
	"testing"
	"unicode"
	"unicode/utf8"
)

// A FoldFunc folds a string for case and diacritic insensitive comparison.
type FoldFunc = func(s string) string

// A ContainsFunc reports whether s contains substr.
type ContainsFunc = func(s, substr string) bool

// HasMarks reports whether s contains a nonspacing mark (category Mn).
func HasMarks(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			return true
		}
	}
	return false
}

// HasUpper reports whether s contains an uppercase or titlecase letter that
// has a lowercase mapping.
func HasUpper(s string) bool {
	for _, r := range s {
		if r < utf8.RuneSelf {
			if 'A' <= r && r <= 'Z' {
				return true
			}
			continue
		}
		if (unicode.IsUpper(r) || unicode.IsTitle(r)) && unicode.ToLower(r) != r {
			return true
		}
	}
	return false
}

// CheckFold reports an error if fold(s) is not idempotent, or if it
// contains a nonspacing mark or an uppercase letter.
func CheckFold(t testing.TB, name string, fold FoldFunc, s string) bool {
	t.Helper()
	ok := true
	f1 := fold(s)
	if f2 := fold(f1); f2 != f1 {
		t.Errorf("%[1]s(%[1]s(%+[2]q)) = %+[3]q; want: %+[4]q", name, s, f2, f1)
		ok = false
	}
	if HasMarks(f1) {
		t.Errorf("%s(%+q) = %+q: result contains nonspacing marks", name, s, f1)
		ok = false
	}
	if HasUpper(f1) {
		t.Errorf("%s(%+q) = %+q: result contains uppercase letters", name, s, f1)
		ok = false
	}
	if !utf8.ValidString(f1) {
		t.Errorf("%s(%+q) = %+q: invalid UTF-8", name, s, f1)
		ok = false
	}
	return ok
}

// CheckContains reports an error if contains(s, substr) != want.
func CheckContains(t testing.TB, name string, contains ContainsFunc, s, substr string, want bool) {
	t.Helper()
	if got := contains(s, substr); got != want {
		t.Errorf("%s(%q, %q) = %t; want: %t", name, s, substr, got, want)
	}
}
