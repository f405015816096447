package main

import (
	"strings"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/davesmith10/tricolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <rgb|cmyk|lab> values...",
	Short: "Convert one color to all three models",
	Example: `  tricolor convert rgb 128 64 32
  tricolor convert cmyk 0 50 75 50
  tricolor convert --no-color lab 50 -20 30`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	model, err := color.ParseModel(args[0])
	if err != nil {
		return err
	}

	values := pipeline.ParseValues(model, strings.Join(args[1:], " "))
	result, err := dispatch.Synchronize(model, values...)
	if err != nil {
		return err
	}
	printResult(cmd, result)
	return nil
}
