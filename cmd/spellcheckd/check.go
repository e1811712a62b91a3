package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spellcheck "github.com/kepka-app/lib-spellcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [words...]",
	Short: "Check words against the loaded dictionaries",
	Long: `Check each word and print its verdict. Exits non-zero when any
word is misspelled, so the command composes in scripts.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checker := newChecker()
		defer checker.Close()

		misspelled := 0
		for _, word := range args {
			ok := checker.CheckSpelling(word)
			fmt.Printf("%s\t%v\n", word, ok)
			if !ok {
				misspelled++
			}
		}
		if misspelled > 0 {
			os.Exit(1)
		}
	},
}

// newChecker builds a one-shot Checker from the persistent flags.
func newChecker() *spellcheck.Checker {
	checker := spellcheck.New(spellcheck.Options{WorkingDir: workingDir})
	checker.UpdateLanguageTags(languages)
	return checker
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
