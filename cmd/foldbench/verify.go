package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charlievieth/foldbench"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the diacritic fixture folds to the plain fixture",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Verify = false
	s, err := foldbench.NewSession(cfg, nil)
	if err != nil {
		return err
	}
	if err := s.CheckEquivalence(); err != nil {
		return err
	}
	matches := foldbench.MatchSet(foldbench.PlainContains, s.FoldedDiacritic, s.FoldedTerm)
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ok: %d lines fold to the same text (%s)\n", len(s.Plain), s.Tag)
	fmt.Fprintf(w, "ok: term %q matches %d lines: %v\n", s.Term, matches.GetCardinality(), matches.ToArray())
	return nil
}
