// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package foldbench measures two ways of finding lines that contain a search
// term while ignoring case and diacritics.
//
// The first, "standard contains", hands the raw text and term to a
// locale-aware matcher ([golang.org/x/text/search]) which absorbs case and
// diacritic differences at query time. The second folds the corpus once and
// the term once (see [Fold]) and then runs a plain byte-wise substring test.
//
// Each method is timed over a plain corpus and over a variant of the same
// corpus in which letters carry combining marks. A [Session] holds the loaded
// and folded corpora and a [Runner] runs timed trials against it, producing a
// [Report].
//
// Folding lowercases using the rules of the session's language and removes
// all nonspacing marks (Unicode category Mn). It does not apply compatibility
// mappings, so ligatures such as 'ﬁ' are left unchanged.
package foldbench

// BUG(cvieth): Folding removes every nonspacing mark, including marks that
// are distinctive in some scripts (for example Hebrew points or Devanagari
// viramas). The standard matcher may treat these differently.
