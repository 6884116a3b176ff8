package foldbench

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownStrategy is returned when parsing an unrecognized strategy name.
var ErrUnknownStrategy = errors.New("foldbench: unknown strategy")

// An IOError records a fixture that is missing or could not be read.
type IOError struct {
	Name string
	Err  error
}

func (e *IOError) Error() string {
	return "foldbench: reading fixture " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// An EncodingError records a fixture that is not valid UTF-8.
type EncodingError struct {
	Name   string
	Line   int   // 1-based line of the first invalid byte
	Offset int64 // byte offset of the first invalid byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("foldbench: fixture %q: invalid UTF-8 at line %d (byte offset %d)",
		e.Name, e.Line, e.Offset)
}

// A MismatchError reports that the folded plain and diacritic corpora differ,
// which means the diacritic fixture is not a diacritic-augmented variant of
// the plain fixture.
type MismatchError struct {
	Line      int // 0-based line index, or -1 if the line counts differ
	Plain     string
	Diacritic string
}

func (e *MismatchError) Error() string {
	if e.Line < 0 {
		return "foldbench: folded corpora differ: " + e.Plain + " != " + e.Diacritic
	}
	return fmt.Sprintf("foldbench: folded corpora differ at line %d:\n"+
		"    plain:     %q\n"+
		"    diacritic: %q", e.Line, e.Plain, e.Diacritic)
}
