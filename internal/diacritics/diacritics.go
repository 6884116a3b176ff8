// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package diacritics generates diacritic variants of ASCII text by attaching
// a combining mark to some of its letters.
package diacritics

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Combining marks are chosen from the Combining Diacritical Marks block.
const (
	MarkMin rune = 0x0300
	MarkMax rune = 0x036F
)

// Letters are the runes a Generator may attach a mark to.
const Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// A Generator assigns each ASCII letter either no mark or a single combining
// mark and applies that assignment to text. The assignment is made once when
// the Generator is created so every occurrence of a letter gets the same
// mark. A Generator is not safe for concurrent use.
type Generator struct {
	rand  *rand.Rand
	marks [128]rune // zero if the letter has no mark
}

// NewGenerator returns a Generator whose assignment is derived from seed.
// Each letter has an even chance of getting a mark.
func NewGenerator(seed int64) *Generator {
	g := &Generator{rand: rand.New(rand.NewSource(seed))}
	for i := 0; i < len(Letters); i++ {
		if g.rand.Intn(2) == 0 {
			continue
		}
		g.marks[Letters[i]] = MarkMin + rune(g.rand.Intn(int(MarkMax-MarkMin)+1))
	}
	return g
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Mark returns the mark assigned to letter r, if any.
func (g *Generator) Mark(r rune) (rune, bool) {
	if !isLetter(r) {
		return 0, false
	}
	m := g.marks[r]
	return m, m != 0
}

// Marked returns the number of letters that are assigned a mark.
func (g *Generator) Marked() int {
	n := 0
	for _, m := range g.marks {
		if m != 0 {
			n++
		}
	}
	return n
}

// A PinError reports text that cannot be produced by a single assignment.
type PinError struct {
	Letter rune
	Marks  string // conflicting marks, empty means no mark
	Offset int
}

func (e *PinError) Error() string {
	return fmt.Sprintf("diacritics: conflicting marks for letter %q at offset %d: %+q",
		e.Letter, e.Offset, e.Marks)
}

// PinFrom fixes the assignment of every letter that occurs in text, which
// should be the output of Apply for some Generator. A
// letter followed by no combining mark is fixed to no mark. Letters that do
// not occur in text keep their assignment.
//
// PinFrom returns a *PinError if a letter carries more than one mark or is
// seen with different marks, in which case g is not modified.
func (g *Generator) PinFrom(text string) error {
	marks := g.marks
	seen := make(map[rune]rune)
	rs := []rune(text)
	off := 0
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		start := off
		off += len(string(r))
		if !isLetter(r) {
			continue
		}
		var m rune
		j := i + 1
		for ; j < len(rs) && unicode.Is(unicode.Mn, rs[j]); j++ {
			off += len(string(rs[j]))
		}
		switch j - i - 1 {
		case 0:
		case 1:
			m = rs[i+1]
		default:
			return &PinError{Letter: r, Marks: string(rs[i+1 : j]), Offset: start}
		}
		if prev, ok := seen[r]; ok && prev != m {
			return &PinError{Letter: r, Marks: markString(prev) + markString(m), Offset: start}
		}
		seen[r] = m
		marks[r] = m
		i = j - 1
	}
	g.marks = marks
	return nil
}

// Apply returns s with the assigned mark inserted after every letter.
func (g *Generator) Apply(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, r := range s {
		b.WriteRune(r)
		if m, ok := g.Mark(r); ok {
			b.WriteRune(m)
		}
	}
	return b.String()
}

// ApplyLines applies g to each line.
func (g *Generator) ApplyLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, s := range lines {
		out[i] = g.Apply(s)
	}
	return out
}

func markString(m rune) string {
	if m == 0 {
		return ""
	}
	return string(m)
}

func hasMark(s string) bool {
	for _, r := range s {
		if MarkMin <= r && r <= MarkMax {
			return true
		}
	}
	return false
}

// PickTerm picks a random word containing a combining mark from the first
// line of lines that has one. The lines should be the output of Apply.
func (g *Generator) PickTerm(lines []string) (string, bool) {
	for _, line := range lines {
		if !hasMark(line) {
			continue
		}
		var words []string
		for _, w := range strings.Fields(line) {
			if hasMark(w) {
				words = append(words, w)
			}
		}
		return words[g.rand.Intn(len(words))], true
	}
	return "", false
}
