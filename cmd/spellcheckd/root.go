package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	workingDir string
	languages  []string
)

var rootCmd = &cobra.Command{
	Use:   "spellcheckd",
	Short: "Multi-language spell-checking service over Hunspell dictionaries",
	Long: `spellcheckd loads Hunspell-style dictionary pairs from a working
directory, checks words against the dictionaries matching their writing
script, and maintains a persistent user dictionary. Run it as a local
daemon with "serve" or use the one-shot commands for scripting.`,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workingDir, "dir", "d", ".", "working directory with <lang>/<lang>.aff|.dic pairs")
	rootCmd.PersistentFlags().StringSliceVarP(&languages, "lang", "l", nil, "language tags to load (e.g. en_US,ru_RU)")
}
