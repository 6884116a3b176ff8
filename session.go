// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"io/fs"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
)

// A Session holds the corpora and search terms shared by every trial of a
// benchmark run. It is built once by NewSession and is read-only afterwards.
type Session struct {
	Tag      language.Tag
	Folder   *Folder
	Searcher *Searcher

	Plain           Corpus
	Diacritic       Corpus
	FoldedPlain     Corpus
	FoldedDiacritic Corpus
	// StrippedDiacritic is Diacritic with marks removed and case kept.
	StrippedDiacritic Corpus

	Term         string
	FoldedTerm   string
	StrippedTerm string
}

// NewSession loads the fixtures named by cfg from fsys and builds the folded
// corpora. If fsys is nil cfg.FS() is used. Any error is fatal: the session
// must not be used.
func NewSession(cfg Config, fsys fs.FS) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = cfg.FS()
	}
	tag, _ := cfg.Tag()
	plain, err := loadFixture(fsys, cfg.Plain)
	if err != nil {
		return nil, err
	}
	diacritic, err := loadFixture(fsys, cfg.Diacritic)
	if err != nil {
		return nil, err
	}
	s := NewSessionCorpora(tag, plain, diacritic, cfg.Term)
	if cfg.Verify {
		if err := s.CheckEquivalence(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loadFixture(fsys fs.FS, name string) (Corpus, error) {
	if filepath.IsAbs(name) {
		return LoadCorpusFile(name)
	}
	return LoadCorpus(fsys, name)
}

// NewSessionCorpora returns a Session for corpora that are already loaded.
func NewSessionCorpora(tag language.Tag, plain, diacritic Corpus, term string) *Session {
	f := NewFolder(tag)
	s := &Session{
		Tag:          tag,
		Folder:       f,
		Searcher:     NewSearcher(tag),
		Plain:        plain,
		Diacritic:    diacritic,
		Term:         term,
		FoldedTerm:   f.Fold(term),
		StrippedTerm: StripMarks(term),
	}
	s.FoldedPlain = plain.Fold(f.Fold)
	s.FoldedDiacritic = diacritic.Fold(f.Fold)
	s.StrippedDiacritic = diacritic.Fold(StripMarks)
	return s
}

// CheckEquivalence verifies that the diacritic corpus folds to the same text
// as the plain corpus, line by line. The first difference is returned as a
// *MismatchError.
func (s *Session) CheckEquivalence() error {
	if len(s.FoldedPlain) != len(s.FoldedDiacritic) {
		return &MismatchError{
			Line:      -1,
			Plain:     strconv.Itoa(len(s.FoldedPlain)) + " lines",
			Diacritic: strconv.Itoa(len(s.FoldedDiacritic)) + " lines",
		}
	}
	for i := range s.FoldedPlain {
		if s.FoldedPlain[i] != s.FoldedDiacritic[i] {
			return &MismatchError{
				Line:      i,
				Plain:     s.FoldedPlain[i],
				Diacritic: s.FoldedDiacritic[i],
			}
		}
	}
	return nil
}

// Corpus returns the corpus searched by strategy st.
func (s *Session) Corpus(st Strategy) Corpus {
	switch st {
	case StandardPlain:
		return s.Plain
	case StandardDiacritic:
		return s.Diacritic
	case FoldedPlain:
		return s.FoldedPlain
	case FoldedDiacritic:
		return s.FoldedDiacritic
	case StrippedCase:
		return s.StrippedDiacritic
	}
	return nil
}

// SearchTerm returns the term strategy st searches for.
func (s *Session) SearchTerm(st Strategy) string {
	switch st {
	case FoldedPlain, FoldedDiacritic:
		return s.FoldedTerm
	case StrippedCase:
		return s.StrippedTerm
	}
	return s.Term
}

// Predicate returns the contains function used by strategy st.
func (s *Session) Predicate(st Strategy) Predicate {
	switch st {
	case StandardPlain, StandardDiacritic:
		return s.Searcher.Contains
	case FoldedPlain, FoldedDiacritic:
		return PlainContains
	case StrippedCase:
		return CaseContains
	}
	return nil
}
