// Package fixtures bundles the corpora used by the foldbench benchmarks.
//
// DiacriticLoremIpsum.txt is LoremIpsum.txt with a combining mark added to
// roughly half of the ASCII letters (the same mark for every occurrence of a
// letter). It is regenerated with `go run gen.go` from the project root,
// which keeps the existing marks; use `go run gen.go -keep=false -seed N`
// for a new assignment.
package fixtures

import "embed"

// Names of the bundled fixtures.
const (
	Plain     = "LoremIpsum.txt"
	Diacritic = "DiacriticLoremIpsum.txt"
)

//go:embed *.txt
var FS embed.FS
