package foldbench

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/charlievieth/foldbench/fixtures"
)

// DefaultTerm is the diacritic search term used by default. Every letter
// carries the same mark it carries in the bundled diacritic fixture.
const DefaultTerm = "M̲a͌ur̉ȉs et̕ el͙em̗en͂t̕um̗ a͌r̉c͝u"

// Config configures a benchmark session.
type Config struct {
	// Locale is a BCP 47 language tag used for folding and searching.
	Locale string `toml:"locale"`
	// Term is the search term.
	Term string `toml:"term"`
	// Plain and Diacritic name the fixtures. Relative names are resolved
	// against Fixtures.
	Plain     string `toml:"plain"`
	Diacritic string `toml:"diacritic"`
	// Fixtures is the directory containing the fixtures. If empty the
	// bundled fixtures are used.
	Fixtures string `toml:"fixtures"`
	// Repetitions is the number of filter operations per trial.
	Repetitions int `toml:"repetitions"`
	// Trials is the number of timed trials per strategy.
	Trials     int        `toml:"trials"`
	Strategies []Strategy `toml:"strategies"`
	// Verify checks that the folded corpora are equal before running.
	Verify bool `toml:"verify"`
	// FoldTermEachRepetition re-folds the search term inside every
	// repetition of the folded strategies instead of once per session.
	FoldTermEachRepetition bool `toml:"fold_term_each_repetition"`
}

// DefaultConfig returns the default configuration: the bundled fixtures,
// the default term, and 10 trials of 1000 repetitions for each of the
// DefaultStrategies.
func DefaultConfig() Config {
	return Config{
		Locale:      "en",
		Term:        DefaultTerm,
		Plain:       fixtures.Plain,
		Diacritic:   fixtures.Diacritic,
		Repetitions: 1000,
		Trials:      10,
		Strategies:  append([]Strategy(nil), DefaultStrategies...),
		Verify:      true,
	}
}

// LoadConfig reads a TOML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("foldbench: config %s:%d:%d: %w", name, row, col, err)
		}
		return cfg, fmt.Errorf("foldbench: config %s: %w", name, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field of c.
func (c *Config) Validate() error {
	if _, err := c.Tag(); err != nil {
		return err
	}
	switch {
	case c.Repetitions < 0:
		return fmt.Errorf("foldbench: invalid repetitions: %d", c.Repetitions)
	case c.Trials < 1:
		return fmt.Errorf("foldbench: invalid trials: %d", c.Trials)
	case c.Plain == "":
		return errors.New("foldbench: missing plain fixture name")
	case c.Diacritic == "":
		return errors.New("foldbench: missing diacritic fixture name")
	case len(c.Strategies) == 0:
		return errors.New("foldbench: no strategies")
	}
	for _, s := range c.Strategies {
		if s < 0 || s >= numStrategies {
			return fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
		}
	}
	return nil
}

// Tag parses the Locale of c.
func (c *Config) Tag() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	t, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("foldbench: invalid locale %q: %w", c.Locale, err)
	}
	return t, nil
}

// FS returns the file system fixtures are loaded from.
func (c *Config) FS() fs.FS {
	if c.Fixtures == "" {
		return fixtures.FS
	}
	return os.DirFS(c.Fixtures)
}
