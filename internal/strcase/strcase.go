// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package strcase implements case-insensitive substring search using simple
// Unicode case folding. Diacritics are significant: 'é' does not match 'e'.
package strcase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/segmentio/asm/ascii"
)

// Contains reports whether substr is within s ignoring case.
func Contains(s, substr string) bool {
	return Index(s, substr) >= 0
}

// EqualFold reports whether s and t are equal under simple Unicode
// case-folding.
func EqualFold(s, t string) bool {
	if ascii.ValidString(s) && ascii.ValidString(t) {
		return ascii.EqualFoldString(s, t)
	}
	ok, exhausted := hasPrefixUnicode(s, t)
	return ok && exhausted
}

// Index returns the index of the first instance of substr in s ignoring
// case, or -1 if substr is not present in s.
func Index(s, substr string) int {
	n := len(substr)
	switch {
	case n == 0:
		return 0
	case n == 1 && substr[0] < utf8.RuneSelf:
		return IndexRune(s, rune(substr[0]))
	}
	// An encoded rune is at most 3 times longer than its folded
	// counterpart ('K' U+212A is 3 bytes, 'k' is 1).
	if len(s)*3 < n {
		return -1
	}
	if ascii.ValidString(substr) && ascii.ValidString(s) {
		if n > len(s) {
			return -1
		}
		return indexASCII(s, substr)
	}
	if r, size := utf8.DecodeRuneInString(substr); size == n {
		return IndexRune(s, r)
	}
	return indexUnicode(s, substr)
}

// IndexRune returns the index of the first instance of the Unicode code point
// r ignoring case, or -1 if rune is not present in s.
// If r is utf8.RuneError, it returns the first instance of any
// invalid UTF-8 byte sequence.
func IndexRune(s string, r rune) int {
	i, _ := indexRune(s, r)
	return i
}

// indexRune returns the index of the first instance of r (ignoring case) and
// the size of the rune that matched.
func indexRune(s string, r rune) (int, int) {
	switch {
	case r == utf8.RuneError:
		for i, r := range s {
			if r == utf8.RuneError {
				return i, 1
			}
		}
		return -1, 1
	case !utf8.ValidRune(r):
		return -1, 1
	}
	size := utf8.RuneLen(r)
	n := strings.IndexRune(s, r)
	if n == 0 {
		return n, size
	}
	if n > 0 {
		s = s[:n] // limit search space
	}
	for rr := unicode.SimpleFold(r); rr != r; rr = unicode.SimpleFold(rr) {
		if o := strings.IndexRune(s, rr); o != -1 && (n == -1 || o < n) {
			n = o
			s = s[:n]
			size = utf8.RuneLen(rr)
		}
	}
	return n, size
}

func indexUnicode(s, substr string) int {
	c0, _ := utf8.DecodeRuneInString(substr)
	for i := 0; i < len(s); {
		o, sz := indexRune(s[i:], c0)
		if o < 0 {
			return -1
		}
		i += o
		match, exhausted := hasPrefixUnicode(s[i:], substr)
		if match {
			return i
		}
		if exhausted {
			return -1
		}
		i += sz
	}
	return -1
}

// hasPrefixUnicode returns if string s begins with prefix (ignoring case) and
// if s was exhausted.
func hasPrefixUnicode(s, prefix string) (bool, bool) {
	if len(s)*3 < len(prefix) {
		return false, true
	}

	// ASCII fast path
	i := 0
	for ; i < len(s) && i < len(prefix); i++ {
		sr := s[i]
		tr := prefix[i]
		if sr|tr >= utf8.RuneSelf {
			goto hasUnicode
		}
		if tr == sr || _lower[sr] == _lower[tr] {
			continue
		}
		return false, i == len(s)-1
	}
	return i == len(prefix), i == len(s)

hasUnicode:
	s = s[i:]
	prefix = prefix[i:]
	for _, tr := range prefix {
		// If s is exhausted the strings are not equal.
		if len(s) == 0 {
			return false, true
		}

		var sr rune
		if s[0] < utf8.RuneSelf {
			sr, s = rune(s[0]), s[1:]
		} else {
			r, size := utf8.DecodeRuneInString(s)
			sr, s = r, s[size:]
		}
		if !equalRune(sr, tr) {
			return false, len(s) == 0
		}
	}
	return true, len(s) == 0 // Prefix exhausted
}

// equalRune reports whether sr and tr are equal under simple case folding.
func equalRune(sr, tr rune) bool {
	if sr == tr {
		return true
	}
	// Make sr < tr to simplify what follows.
	if tr < sr {
		tr, sr = sr, tr
	}
	// Fast check for ASCII.
	if tr < utf8.RuneSelf {
		// ASCII only, sr/tr must be upper/lower case
		return 'A' <= sr && sr <= 'Z' && tr == sr+'a'-'A'
	}
	// General case. SimpleFold(x) returns the next equivalent rune > x
	// or wraps around to smaller values.
	r := unicode.SimpleFold(sr)
	for r != sr && r < tr {
		r = unicode.SimpleFold(r)
	}
	return r == tr
}
