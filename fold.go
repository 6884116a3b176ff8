// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"strings"
	"sync"
	"unicode"

	"github.com/segmentio/asm/ascii"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// A FoldFunc folds a string for case and diacritic insensitive comparison.
// Both sides of a comparison must be folded with the same FoldFunc.
type FoldFunc func(s string) string

// A Folder folds text using the case rules of a language. A Folder is safe
// for concurrent use.
type Folder struct {
	tag  language.Tag
	fast bool // ASCII fast path is valid for tag
	pool sync.Pool
}

// NewFolder returns a Folder for language tag t.
func NewFolder(t language.Tag) *Folder {
	f := &Folder{
		tag:  t,
		fast: !turkic(t),
	}
	f.pool.New = func() any {
		// Lowercase before decomposing: some lowercase mappings introduce
		// marks (e.g. 'İ' → "i̇" outside of Turkic languages).
		return transform.Chain(
			cases.Lower(t),
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	}
	return f
}

// Tag returns the language tag of f.
func (f *Folder) Tag() language.Tag { return f.tag }

// Fold returns s lowercased with all nonspacing marks (Unicode category Mn)
// removed. The result is in NFC form and Fold is idempotent:
// f.Fold(f.Fold(s)) == f.Fold(s).
func (f *Folder) Fold(s string) string {
	if f.fast && ascii.ValidString(s) {
		return lowerASCII(s)
	}
	t := f.pool.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	t.Reset()
	f.pool.Put(t)
	if err != nil {
		// Only possible on ill-formed UTF-8 which Corpus loading rejects.
		return s
	}
	return out
}

// FoldFunc returns f.Fold as a FoldFunc.
func (f *Folder) FoldFunc() FoldFunc { return f.Fold }

// Fold folds s using the case rules of language t. Use a Folder when folding
// many strings.
func Fold(s string, t language.Tag) string {
	return NewFolder(t).Fold(s)
}

// StripMarks removes nonspacing marks from s without changing its case.
func StripMarks(s string) string {
	if ascii.ValidString(s) {
		return s
	}
	t := stripPool.Get().(transform.Transformer)
	out, _, err := transform.String(t, s)
	t.Reset()
	stripPool.Put(t)
	if err != nil {
		return s
	}
	return out
}

var stripPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// FoldASCII is a FoldFunc that only lowercases ASCII letters and drops
// combining marks in the range U+0300-U+036F. It exists as a simple
// deterministic stand-in for tests and does not handle precomposed letters.
func FoldASCII(s string) string {
	if ascii.ValidString(s) {
		return lowerASCII(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			b.WriteByte(byte(r) + 'a' - 'A')
		case 0x0300 <= r && r <= 0x036F:
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s[:i])
	for ; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

// turkic reports if t uses the Turkic dotted/dotless i mappings, in which
// case ASCII 'I' does not lowercase to 'i'.
func turkic(t language.Tag) bool {
	base, _ := t.Base()
	switch base.String() {
	case "tr", "az":
		return true
	}
	return false
}
