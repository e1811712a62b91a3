package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [word]",
	Short: "Print correction suggestions for a word",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		checker := newChecker()
		defer checker.Close()

		var suggestions []string
		checker.FillSuggestionList(args[0], &suggestions)
		for _, s := range suggestions {
			fmt.Println(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
