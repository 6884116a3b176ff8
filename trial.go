// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package foldbench

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring"
)

// filterSink keeps the compiler from discarding filter results.
var filterSink []string

// RunTrial filters corpus for term reps times using pred and returns the
// elapsed wall-clock time. Each repetition builds a new slice of the matching
// lines. It cannot fail and is deterministic in its results: only the
// duration varies between calls.
func RunTrial(pred Predicate, corpus Corpus, term string, reps int) time.Duration {
	var lines []string
	start := time.Now()
	for i := 0; i < reps; i++ {
		lines = corpus.Filter(pred, term)
	}
	d := time.Since(start)
	filterSink = lines
	return d
}

// runTrialFoldTerm is like RunTrial but folds term at the start of every
// repetition.
func runTrialFoldTerm(pred Predicate, fold FoldFunc, corpus Corpus, term string, reps int) time.Duration {
	var lines []string
	start := time.Now()
	for i := 0; i < reps; i++ {
		lines = corpus.Filter(pred, fold(term))
	}
	d := time.Since(start)
	filterSink = lines
	return d
}

// MatchSet returns the indexes of the lines of corpus that match term.
func MatchSet(pred Predicate, corpus Corpus, term string) *roaring.Bitmap {
	bm := roaring.New()
	for i, line := range corpus {
		if pred(line, term) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// A Trial is one timed execution of a Strategy.
type Trial struct {
	Strategy Strategy
	Duration time.Duration
	Matches  *roaring.Bitmap
}

// A Runner runs the trials of a Session serially on the calling goroutine.
type Runner struct {
	cfg     Config
	session *Session

	// OnTrial, if not nil, is called after each trial completes.
	OnTrial func(Trial)
}

// NewRunner returns a Runner for session s configured by cfg.
func NewRunner(cfg Config, s *Session) *Runner {
	return &Runner{cfg: cfg, session: s}
}

// Session returns the Session r runs against.
func (r *Runner) Session() *Session { return r.session }

// NumTrials returns the total number of trials Run performs.
func (r *Runner) NumTrials() int {
	return len(r.cfg.Strategies) * r.cfg.Trials
}

// Trial runs a single trial of strategy st.
func (r *Runner) Trial(st Strategy) Trial {
	s := r.session
	corpus := s.Corpus(st)
	pred := s.Predicate(st)
	tr := Trial{Strategy: st}
	if st.Folded() && r.cfg.FoldTermEachRepetition {
		tr.Matches = MatchSet(pred, corpus, s.Folder.Fold(s.Term))
		tr.Duration = runTrialFoldTerm(pred, s.Folder.Fold, corpus, s.Term, r.cfg.Repetitions)
	} else {
		term := s.SearchTerm(st)
		tr.Matches = MatchSet(pred, corpus, term)
		tr.Duration = RunTrial(pred, corpus, term, r.cfg.Repetitions)
	}
	if r.OnTrial != nil {
		r.OnTrial(tr)
	}
	return tr
}

// Run runs every configured strategy for the configured number of trials
// and returns the Report. The context is checked between trials: if it is
// canceled Run returns the partial Report along with the context's error.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	rep := newReport(r.cfg, r.session)
	for _, st := range r.cfg.Strategies {
		res := Result{Strategy: st}
		for i := 0; i < r.cfg.Trials; i++ {
			if err := ctx.Err(); err != nil {
				if len(res.Durations) > 0 {
					rep.Results = append(rep.Results, res)
				}
				return rep, err
			}
			tr := r.Trial(st)
			if res.Matches == nil {
				res.Matches = tr.Matches
			}
			res.Durations = append(res.Durations, tr.Duration)
		}
		rep.Results = append(rep.Results, res)
	}
	return rep, nil
}
