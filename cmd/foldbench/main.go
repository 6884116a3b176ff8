// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command foldbench compares locale-aware standard contains against folding
// followed by plain contains.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/charlievieth/foldbench"
)

var (
	configFile string
	locale     string
	fixtures   string
)

var rootCmd = &cobra.Command{
	Use:   "foldbench",
	Short: "Benchmark case and diacritic insensitive search",
	Long: `foldbench measures two ways of finding the lines of a corpus that contain a
search term while ignoring case and diacritics: a locale-aware standard
contains, and folding the corpus and term once followed by a plain contains.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "TOML config file")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "", "BCP 47 language tag (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&fixtures, "fixtures", "", "fixtures directory (default: bundled fixtures)")
}

// loadConfig returns the config file, if any, with the persistent flags
// applied on top of it.
func loadConfig(cmd *cobra.Command) (foldbench.Config, error) {
	cfg := foldbench.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = foldbench.LoadConfig(configFile); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = locale
	}
	if flags.Changed("fixtures") {
		cfg.Fixtures = fixtures
	}
	return cfg, nil
}

func realMain(ctx context.Context, args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func main() {
	log.SetPrefix("foldbench: ")
	log.SetFlags(log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := realMain(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
