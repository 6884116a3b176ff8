// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/segmentio/asm/ascii"
)

// A Corpus is an ordered sequence of text lines. A Corpus is never modified
// after it is loaded.
type Corpus []string

// LoadCorpus reads the fixture name from fsys and splits it into lines.
// A missing or unreadable fixture returns an *IOError and invalid UTF-8
// returns an *EncodingError.
func LoadCorpus(fsys fs.FS, name string) (Corpus, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &IOError{Name: name, Err: err}
	}
	return ParseCorpus(name, data)
}

// LoadCorpusFile is like LoadCorpus but reads the file at path.
func LoadCorpusFile(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Name: filepath.Base(path), Err: err}
	}
	return ParseCorpus(filepath.Base(path), data)
}

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseCorpus validates data as UTF-8 and splits it into lines. The name is
// only used for error reporting.
func ParseCorpus(name string, data []byte) (Corpus, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !ascii.Valid(data) && !utf8.Valid(data) {
		off := invalidOffset(data)
		return nil, &EncodingError{
			Name:   name,
			Line:   bytes.Count(data[:off], []byte{'\n'}) + 1,
			Offset: int64(off),
		}
	}
	return SplitLines(string(data)), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// SplitLines splits s on line terminators: "\n", "\r\n", "\r", NEL (U+0085),
// LS (U+2028), and PS (U+2029). Blank lines are kept as empty strings but a
// terminator at the end of s does not start a new line. An empty s has no
// lines.
func SplitLines(s string) Corpus {
	if len(s) == 0 {
		return Corpus{}
	}
	lines := make(Corpus, 0, bytes.Count([]byte(s), []byte{'\n'})+1)
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '\n':
				lines = append(lines, s[start:i])
				i++
				start = i
			case '\r':
				lines = append(lines, s[start:i])
				i++
				if i < len(s) && s[i] == '\n' {
					i++
				}
				start = i
			default:
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			start = i + size
		}
		i += size
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Fold returns a new Corpus with every line folded by fold.
func (c Corpus) Fold(fold FoldFunc) Corpus {
	folded := make(Corpus, len(c))
	for i, s := range c {
		folded[i] = fold(s)
	}
	return folded
}

// Filter returns the lines of c that match term.
func (c Corpus) Filter(match Predicate, term string) []string {
	var out []string
	for _, s := range c {
		if match(s, term) {
			out = append(out, s)
		}
	}
	return out
}
