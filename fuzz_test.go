// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"

	"github.com/charlievieth/foldbench/internal/test"
)

var fuzzTags = []language.Tag{
	language.English,
	language.Turkish,
	language.Lithuanian,
	language.Greek,
}

func TestFoldRandom(t *testing.T) {
	folders := make([]*Folder, len(fuzzTags))
	for i, tag := range fuzzTags {
		folders[i] = NewFolder(tag)
	}
	test.RunRandomTest(t, func(t *test.FuzzTest) {
		s := t.RandMarked(24)
		for _, f := range folders {
			if !test.CheckFold(t, "Fold_"+f.Tag().String(), f.Fold, s) {
				t.FailNow()
			}
		}
	})
}

// Folding a string must not change which folded strings contain it.
func TestFoldContainsRandom(t *testing.T) {
	f := NewFolder(language.English)
	test.RunRandomTest(t, func(t *test.FuzzTest) {
		s := t.RandMarked(32)
		folded := f.Fold(s)
		words := strings.Fields(s)
		if len(words) == 0 {
			return
		}
		word := words[t.Rand.Intn(len(words))]
		if !PlainContains(folded, f.Fold(word)) {
			t.Fatalf("PlainContains(%+q, %+q) = false; want: true", folded, f.Fold(word))
		}
	})
}

func TestStripMarksRandom(t *testing.T) {
	test.RunRandomTest(t, func(t *test.FuzzTest) {
		s := t.RandMarked(24)
		got := StripMarks(s)
		if test.HasMarks(got) {
			t.Fatalf("StripMarks(%+q) = %+q: result contains marks", s, got)
		}
		if again := StripMarks(got); again != got {
			t.Fatalf("StripMarks(StripMarks(%+q)) = %+q; want: %+q", s, again, got)
		}
	})
}

func FuzzFold(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"CAFÉ",
		"cafe\u0301",
		"\u0130stanbul",
		"I\u0307stanbul",
		"ΟΔΥΣΣΕΥΣ",
		"Ǆemal",
		DefaultTerm,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	folders := make([]*Folder, len(fuzzTags))
	for i, tag := range fuzzTags {
		folders[i] = NewFolder(tag)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			t.Skip("invalid UTF-8")
		}
		for _, fr := range folders {
			f1 := fr.Fold(s)
			if f2 := fr.Fold(f1); f2 != f1 {
				t.Fatalf("Fold_%s(Fold(%+q)) = %+q; want: %+q", fr.Tag(), s, f2, f1)
			}
			if test.HasMarks(f1) {
				t.Fatalf("Fold_%s(%+q) = %+q: result contains nonspacing marks", fr.Tag(), s, f1)
			}
		}
	})
}

// The rune tables used by the random tests must include the combining
// marks used by the bundled fixtures.
func TestRandomTablesCoverFixtureMarks(t *testing.T) {
	marks := test.MarkRunes()
	for _, r := range DefaultTerm {
		if r < utf8.RuneSelf {
			continue
		}
		if _, found := slices.BinarySearch(marks, r); !found {
			t.Errorf("mark %U is missing from the random rune tables", r)
		}
	}
}
