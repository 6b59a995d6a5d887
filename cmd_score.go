package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoreIn string

var commandScore = &cobra.Command{
	Use:   "score [TEXT...]",
	Short: "Compute the englishness score of a text",
	RunE: func(cmd *cobra.Command, args []string) error {
		scorer, err := loadScorer()
		if err != nil {
			return err
		}
		text, err := readText(args, scoreIn)
		if err != nil {
			return err
		}
		fmt.Println(au.Cyan("Englishness Score:"), scorer.Englishness(text))
		return nil
	},
}

func init() {
	commandScore.Flags().StringVarP(&scoreIn, "in", "i", "", "read text from file")
	mainCommand.AddCommand(commandScore)
}
