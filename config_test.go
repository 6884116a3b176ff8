package foldbench

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/charlievieth/foldbench/fixtures"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "foldbench.toml")
	require.NoError(t, os.WriteFile(name, []byte(data), 0644))
	return name
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Repetitions)
	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, DefaultStrategies, cfg.Strategies)
	assert.Equal(t, fixtures.Plain, cfg.Plain)
	assert.True(t, cfg.Verify)

	// DefaultConfig must not share the DefaultStrategies slice.
	cfg.Strategies[0] = StrippedCase
	assert.Equal(t, StandardPlain, DefaultStrategies[0])
}

func TestLoadConfig(t *testing.T) {
	name := writeConfig(t, `
locale = "tr"
term = "istanbul"
repetitions = 5
strategies = ["folded-plain", "Stripped-Case"]
fold_term_each_repetition = true
`)
	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "istanbul", cfg.Term)
	assert.Equal(t, 5, cfg.Repetitions)
	assert.Equal(t, 10, cfg.Trials) // default
	assert.Equal(t, []Strategy{FoldedPlain, StrippedCase}, cfg.Strategies)
	assert.True(t, cfg.FoldTermEachRepetition)
	assert.True(t, cfg.Verify) // default

	tag, err := cfg.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.Turkish, tag)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadConfig(writeConfig(t, `strategies = ["bogus"]`))
	assert.ErrorContains(t, err, "unknown strategy")

	_, err = LoadConfig(writeConfig(t, "trials = \"ten\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "trials = \n"))
	assert.ErrorContains(t, err, ":1:")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"Default", func(*Config) {}, nil},
		{"ZeroRepetitions", func(c *Config) { c.Repetitions = 0 }, nil},
		{"NegativeRepetitions", func(c *Config) { c.Repetitions = -1 }, errAny},
		{"ZeroTrials", func(c *Config) { c.Trials = 0 }, errAny},
		{"MissingPlain", func(c *Config) { c.Plain = "" }, errAny},
		{"MissingDiacritic", func(c *Config) { c.Diacritic = "" }, errAny},
		{"NoStrategies", func(c *Config) { c.Strategies = nil }, errAny},
		{"BadStrategy", func(c *Config) { c.Strategies = []Strategy{numStrategies} }, ErrUnknownStrategy},
		{"BadLocale", func(c *Config) { c.Locale = "not a locale!" }, errAny},
		{"EmptyLocale", func(c *Config) { c.Locale = "" }, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)
			err := cfg.Validate()
			switch test.err {
			case nil:
				assert.NoError(t, err)
			case errAny:
				assert.Error(t, err)
			default:
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

var errAny = errors.New("any error")
