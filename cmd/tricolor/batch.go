package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/ir"
	"github.com/davesmith10/tricolor/internal/logging"
	"github.com/davesmith10/tricolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a file of colors (one per line) to JSON",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringP("input", "i", "", "Input file, one color per line (- for stdin)")
	batchCmd.Flags().StringP("output", "o", "-", "Output JSON file (- for stdout)")
	batchCmd.Flags().String("from", "rgb", "Model of the input values (rgb, cmyk, lab)")
	batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

type batchOutput struct {
	From       string      `json:"from"`
	Count      int         `json:"count"`
	Invalid    int         `json:"invalid"`
	OutOfGamut int         `json:"out_of_gamut"`
	Colors     []ir.Record `json:"colors"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	fromStr, _ := cmd.Flags().GetString("from")

	from, err := color.ParseModel(fromStr)
	if err != nil {
		return err
	}

	var inputData []byte
	if inputPath == "-" {
		inputData, err = io.ReadAll(cmd.InOrStdin())
	} else {
		inputData, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{From: from, Logger: logging.Logger()})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	out := batchOutput{
		From:       from.String(),
		Count:      len(result.Records),
		Invalid:    result.Invalid,
		OutOfGamut: result.OutOfGamut,
		Colors:     result.Records,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	data = append(data, '\n')

	if outputPath == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Converted %d colors (%d invalid, %d out of gamut) → %s\n",
		out.Count, out.Invalid, out.OutOfGamut, outputPath)
	return nil
}
