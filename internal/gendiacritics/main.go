// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gendiacritics generates the diacritic fixture from the plain fixture
// (`go run gen.go` from the project root).
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/charlievieth/foldbench"
	"github.com/charlievieth/foldbench/fixtures"
	"github.com/charlievieth/foldbench/internal/diacritics"
	"github.com/charlievieth/foldbench/internal/util"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
}

type config struct {
	seed    int64
	in      string
	out     string
	dryRun  bool
	pinTerm bool
	keep    bool
	locale  string
}

func parseFlags(args []string) (*config, error) {
	var conf config
	fset := flag.NewFlagSet("gendiacritics", flag.ContinueOnError)
	fset.Int64Var(&conf.seed, "seed", 1, "Random seed used to assign marks to letters.")
	fset.StringVar(&conf.in, "in", "", "Plain fixture (default: fixtures/"+fixtures.Plain+").")
	fset.StringVar(&conf.out, "out", "", "Diacritic fixture to write (default: fixtures/"+fixtures.Diacritic+").")
	fset.BoolVar(&conf.dryRun, "dry-run", false, "Write the generated text to stdout instead of the output file.")
	fset.BoolVar(&conf.pinTerm, "pin-term", true, "Use the marks of the default search term for its letters.")
	fset.BoolVar(&conf.keep, "keep", true, "Keep the marks of letters that occur in the existing output file.")
	fset.StringVar(&conf.locale, "locale", "en", "Locale used to check the generated text.")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %q", fset.Args())
	}
	if conf.in == "" || conf.out == "" {
		dir, err := util.FixturesDir()
		if err != nil {
			return nil, err
		}
		if conf.in == "" {
			conf.in = filepath.Join(dir, fixtures.Plain)
		}
		if conf.out == "" {
			conf.out = filepath.Join(dir, fixtures.Diacritic)
		}
	}
	return &conf, nil
}

func newProgressBar(max int) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return progressbar.NewOptions(max,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("lines"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return progressbar.DefaultSilent(int64(max))
}

// generate returns the diacritic variant of plain. Letters that occur in
// prev keep the mark they have there.
func generate(conf *config, plain, prev foldbench.Corpus) (foldbench.Corpus, error) {
	g := diacritics.NewGenerator(conf.seed)
	if len(prev) > 0 {
		if err := g.PinFrom(strings.Join(prev, "\n")); err != nil {
			return nil, fmt.Errorf("existing output: %w", err)
		}
	}
	if conf.pinTerm {
		if err := g.PinFrom(foldbench.DefaultTerm); err != nil {
			return nil, err
		}
	}
	bar := newProgressBar(len(plain))
	out := make(foldbench.Corpus, len(plain))
	for i, line := range plain {
		out[i] = g.Apply(line)
		if err := bar.Add(1); err != nil {
			return nil, err
		}
	}
	if err := bar.Finish(); err != nil {
		return nil, err
	}
	if word, ok := g.PickTerm(out); ok {
		log.Printf("marked %d/%d letters; random search term: %+q",
			g.Marked(), len(diacritics.Letters), word)
	}
	return out, nil
}

func verify(conf *config, plain, diacritic foldbench.Corpus) error {
	tag, err := (&foldbench.Config{Locale: conf.locale}).Tag()
	if err != nil {
		return err
	}
	s := foldbench.NewSessionCorpora(tag, plain, diacritic, foldbench.DefaultTerm)
	if err := s.CheckEquivalence(); err != nil {
		return err
	}
	if conf.pinTerm {
		// Every line containing the unmarked term must contain the marked one.
		want := foldbench.MatchSet(foldbench.PlainContains, s.Plain, foldbench.StripMarks(s.Term))
		got := foldbench.MatchSet(foldbench.PlainContains, s.Diacritic, s.Term)
		if !got.Equals(want) {
			return errors.New("the default search term does not occur in the " +
				"diacritic text: the plain fixture may have changed")
		}
	}
	return nil
}

func writeCorpus(w io.Writer, c foldbench.Corpus) error {
	var buf bytes.Buffer
	for _, line := range c {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeFile(name string, c foldbench.Corpus) error {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err := writeCorpus(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}

func realMain(args []string) int {
	conf, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Println(err)
		return 2
	}
	plain, err := foldbench.LoadCorpusFile(conf.in)
	if err != nil {
		log.Println(err)
		return 1
	}
	var prev foldbench.Corpus
	if conf.keep {
		prev, err = foldbench.LoadCorpusFile(conf.out)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Println(err)
			return 1
		}
	}
	diacritic, err := generate(conf, plain, prev)
	if err != nil {
		log.Println(err)
		return 1
	}
	if err := verify(conf, plain, diacritic); err != nil {
		log.Println(err)
		return 1
	}
	if conf.dryRun {
		if err := writeCorpus(os.Stdout, diacritic); err != nil {
			log.Println(err)
			return 1
		}
		return 0
	}
	if err := writeFile(conf.out, diacritic); err != nil {
		log.Println(err)
		return 1
	}
	log.Printf("wrote %d lines to: %s", len(diacritic),
		strings.TrimPrefix(conf.out, filepath.Dir(filepath.Dir(conf.out))+string(filepath.Separator)))
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}
