package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the languages with a usable dictionary pair",
	Run: func(cmd *cobra.Command, args []string) {
		checker := newChecker()
		defer checker.Close()

		for _, lang := range checker.ActiveLanguages() {
			fmt.Println(lang)
		}
	},
}

func init() {
	rootCmd.AddCommand(langsCmd)
}
