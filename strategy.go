package foldbench

import (
	"fmt"

	"github.com/segmentio/asm/ascii"
)

// A Strategy is a way of searching a corpus for a term.
type Strategy int

const (
	// StandardPlain uses locale-aware standard contains over the plain
	// corpus and the raw diacritic term.
	StandardPlain Strategy = iota
	// StandardDiacritic uses locale-aware standard contains over the
	// diacritic corpus and the raw diacritic term.
	StandardDiacritic
	// FoldedPlain uses plain contains over the folded plain corpus and the
	// folded term.
	FoldedPlain
	// FoldedDiacritic uses plain contains over the folded diacritic corpus
	// and the folded term.
	FoldedDiacritic
	// StrippedCase uses case-insensitive contains over the diacritic corpus
	// and term with their marks stripped (case is kept).
	StrippedCase

	numStrategies = iota
)

// DefaultStrategies are the four strategies compared by default.
var DefaultStrategies = []Strategy{
	StandardPlain,
	StandardDiacritic,
	FoldedPlain,
	FoldedDiacritic,
}

// AllStrategies returns every known Strategy.
func AllStrategies() []Strategy {
	all := make([]Strategy, numStrategies)
	for i := range all {
		all[i] = Strategy(i)
	}
	return all
}

var strategyNames = [numStrategies]string{
	StandardPlain:     "standard-plain",
	StandardDiacritic: "standard-diacritic",
	FoldedPlain:       "folded-plain",
	FoldedDiacritic:   "folded-diacritic",
	StrippedCase:      "stripped-case",
}

func (s Strategy) String() string {
	if 0 <= s && s < numStrategies {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Folded reports if s searches folded text with a plain contains.
func (s Strategy) Folded() bool {
	return s == FoldedPlain || s == FoldedDiacritic
}

// ParseStrategy returns the Strategy named name. Names are matched ignoring
// ASCII case.
func ParseStrategy(name string) (Strategy, error) {
	for i, s := range strategyNames {
		if ascii.EqualFoldString(s, name) {
			return Strategy(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || s >= numStrategies {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
