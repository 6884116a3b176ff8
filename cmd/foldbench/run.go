package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/charlievieth/foldbench"
)

var (
	runTrials     int
	runReps       int
	runStrategies []string
	runTerm       string
	runJSON       bool
	runFoldEach   bool
	runNoVerify   bool
	runProgress   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark",
	Long: `Runs every strategy for the configured number of trials and prints the
minimum, median, and mean duration of each. Each trial filters the corpus
the configured number of times.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runTrials, "trials", "t", 0, "number of trials per strategy (default from config)")
	runCmd.Flags().IntVarP(&runReps, "reps", "n", 0, "filter operations per trial (default from config)")
	runCmd.Flags().StringSliceVarP(&runStrategies, "strategy", "s", nil, "strategy to run (repeatable, see 'foldbench strategies')")
	runCmd.Flags().StringVar(&runTerm, "term", "", "search term (default from config)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "output the report as JSON")
	runCmd.Flags().BoolVar(&runFoldEach, "fold-each", false, "fold the term in every repetition of the folded strategies")
	runCmd.Flags().BoolVar(&runNoVerify, "no-verify", false, "skip the folded corpora equivalence check")
	runCmd.Flags().BoolVar(&runProgress, "progress", true, "show progress when stderr is a terminal")
	rootCmd.AddCommand(runCmd)
}

func runConfig(cmd *cobra.Command) (foldbench.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = runTrials
	}
	if flags.Changed("reps") {
		cfg.Repetitions = runReps
	}
	if flags.Changed("term") {
		cfg.Term = runTerm
	}
	if flags.Changed("strategy") {
		cfg.Strategies = cfg.Strategies[:0]
		for _, name := range runStrategies {
			s, err := foldbench.ParseStrategy(name)
			if err != nil {
				return cfg, err
			}
			cfg.Strategies = append(cfg.Strategies, s)
		}
	}
	if flags.Changed("fold-each") {
		cfg.FoldTermEachRepetition = runFoldEach
	}
	if runNoVerify {
		cfg.Verify = false
	}
	return cfg, cfg.Validate()
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := runConfig(cmd)
	if err != nil {
		return err
	}
	s, err := foldbench.NewSession(cfg, nil)
	if err != nil {
		return err
	}
	r := foldbench.NewRunner(cfg, s)

	var bar *progressbar.ProgressBar
	if runProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = progressbar.NewOptions(r.NumTrials(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("trials"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		r.OnTrial = func(tr foldbench.Trial) {
			bar.Describe(tr.Strategy.String())
			_ = bar.Add(1)
		}
	}

	rep, err := r.Run(cmd.Context())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("benchmark interrupted: %w", err)
	}

	out := cmd.OutOrStdout()
	if runJSON {
		err = rep.WriteJSON(out)
	} else {
		err = rep.WriteText(out)
	}
	if err != nil {
		return err
	}
	if !rep.Agree() {
		return errors.New("strategies matched different lines")
	}
	return nil
}
