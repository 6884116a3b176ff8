// Package benchtest contains Go benchmarks for the four scenarios measured by
// the foldbench command: standard contains and fold-then-plain-contains, each
// over the plain and diacritic fixtures.
//
// Each benchmark iteration filters the whole corpus once, so b.N plays the
// role of the repetition count. Use the foldbench command for trial
// statistics that are comparable across strategies.
//
// It is not part of the foldbench package so that the corpora are loaded
// only when benchmarking.
package benchtest
