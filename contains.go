// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/charlievieth/foldbench/internal/strcase"
)

// A Predicate reports whether haystack contains needle.
type Predicate func(haystack, needle string) bool

// A Searcher performs locale-aware substring searches that ignore case and
// diacritics, the way a user would expect a search field to behave.
type Searcher struct {
	tag language.Tag
	m   *search.Matcher
}

// NewSearcher returns a Searcher using the collation rules of language t.
func NewSearcher(t language.Tag) *Searcher {
	return &Searcher{
		tag: t,
		m:   search.New(t, search.IgnoreCase, search.IgnoreDiacritics),
	}
}

// Tag returns the language tag of s.
func (s *Searcher) Tag() language.Tag { return s.tag }

// Contains reports whether needle is within haystack ignoring case and
// diacritics. The needle is compiled on every call. An empty needle is
// contained by any haystack, matching strings.Contains.
func (s *Searcher) Contains(haystack, needle string) bool {
	if len(needle) == 0 {
		return true
	}
	start, _ := s.m.IndexString(haystack, needle)
	return start != -1
}

// Compile returns a Predicate that matches needle without recompiling it.
// The needle argument of the returned Predicate is ignored.
func (s *Searcher) Compile(needle string) Predicate {
	if len(needle) == 0 {
		return func(string, string) bool { return true }
	}
	p := s.m.CompileString(needle)
	return func(haystack, _ string) bool {
		start, _ := p.IndexString(haystack)
		return start != -1
	}
}

// StandardContains reports whether needle is within haystack ignoring case
// and diacritics using the rules of language t.
func StandardContains(haystack, needle string, t language.Tag) bool {
	return NewSearcher(t).Contains(haystack, needle)
}

// PlainContains reports whether needle is within haystack. No normalization
// is performed so both arguments should already be folded.
func PlainContains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}

// CaseContains reports whether needle is within haystack under simple
// Unicode case folding. Diacritics are significant.
func CaseContains(haystack, needle string) bool {
	return strcase.Contains(haystack, needle)
}
