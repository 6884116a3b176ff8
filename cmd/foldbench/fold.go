package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/charlievieth/foldbench"
)

var foldJSON bool

var foldCmd = &cobra.Command{
	Use:   "fold [text...]",
	Short: "Print folded text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFold,
}

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the benchmark strategies",
	Args:  cobra.NoArgs,
	Run:   listStrategies,
}

func init() {
	foldCmd.Flags().BoolVar(&foldJSON, "json", false, "output as a JSON object mapping input to folded text")
	rootCmd.AddCommand(foldCmd)
	rootCmd.AddCommand(strategiesCmd)
}

func runFold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tag, err := cfg.Tag()
	if err != nil {
		return err
	}
	f := foldbench.NewFolder(tag)
	w := cmd.OutOrStdout()
	if !foldJSON {
		for _, s := range args {
			fmt.Fprintln(w, f.Fold(s))
		}
		return nil
	}
	m := make(map[string]string, len(args))
	for _, s := range args {
		m[s] = f.Fold(s)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal folded text: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

var strategyHelp = map[foldbench.Strategy]string{
	foldbench.StandardPlain:     "standard contains over the plain corpus",
	foldbench.StandardDiacritic: "standard contains over the diacritic corpus",
	foldbench.FoldedPlain:       "plain contains over the folded plain corpus",
	foldbench.FoldedDiacritic:   "plain contains over the folded diacritic corpus",
	foldbench.StrippedCase:      "case-insensitive contains over the diacritic corpus without marks",
}

func listStrategies(cmd *cobra.Command, _ []string) {
	names := make(map[string]foldbench.Strategy)
	for _, s := range foldbench.AllStrategies() {
		names[s.String()] = s
	}
	keys := maps.Keys(names)
	slices.Sort(keys)
	w := cmd.OutOrStdout()
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}
	for _, k := range keys {
		s := names[k]
		def := ""
		if slices.Contains(foldbench.DefaultStrategies, s) {
			def = " (default)"
		}
		fmt.Fprintf(w, "%s%s  %s%s\n", k, strings.Repeat(" ", width-len(k)), strategyHelp[s], def)
	}
}
