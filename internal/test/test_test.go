package test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"
)

func TestHasMarks(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"abc", false},
		{"caf\u00e9", false}, // precomposed
		{"cafe\u0301", true}, // combining acute
		{"a\u20dd", false},   // enclosing mark (Me)
		{"x\u0332", true},
	}
	for _, test := range tests {
		if got := HasMarks(test.s); got != test.want {
			t.Errorf("HasMarks(%+q) = %t; want: %t", test.s, got, test.want)
		}
	}
}

func TestHasUpper(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", false},
		{"abc", false},
		{"aBc", true},
		{"ÉCOLE", true},
		{"école", false},
		{"ǅ", true},  // titlecase
		{"ß", false}, // no uppercase
		{"σς", false},
		{"Σ", true},
	}
	for _, test := range tests {
		if got := HasUpper(test.s); got != test.want {
			t.Errorf("HasUpper(%q) = %t; want: %t", test.s, got, test.want)
		}
	}
}

func TestRandMarked(t *testing.T) {
	rr := rand.New(rand.NewSource(1))
	var marks, upper int
	for i := 0; i < 100; i++ {
		s := RandMarked(rr, 32)
		if HasMarks(s) {
			marks++
		}
		if HasUpper(s) {
			upper++
		}
		if n := len([]rune(strings.ReplaceAll(s, " ", ""))); n < 32 {
			t.Fatalf("RandMarked(32) returned %d runes: %+q", n, s)
		}
	}
	// With 32 letters per string it is effectively impossible for either
	// of these to be below 90.
	if marks < 90 || upper < 90 {
		t.Errorf("RandMarked: strings with marks: %d/100 with uppercase: %d/100",
			marks, upper)
	}
}

func TestGeneratedRuneTables(t *testing.T) {
	for _, r := range MarkRunes() {
		if !unicode.Is(unicode.Mn, r) {
			t.Errorf("MarkRunes: %U is not a nonspacing mark", r)
		}
	}
	for _, r := range LetterRunes() {
		if !unicode.IsLetter(r) {
			t.Errorf("LetterRunes: %U is not a letter", r)
		}
	}
	if len(MarkRunes()) < 112 {
		t.Errorf("MarkRunes: only %d marks", len(MarkRunes()))
	}
}
