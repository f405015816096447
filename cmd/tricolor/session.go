package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/davesmith10/tricolor/internal/history"
	"github.com/davesmith10/tricolor/internal/logging"
	"github.com/davesmith10/tricolor/internal/pipeline"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactively convert colors read from stdin",
	Long: `Reads one command per line:

  rgb R G B | cmyk C M Y K | lab L A B   convert a color
  <hex or color name>                    convert an RGB color
  recent                                 list recently converted colors
  quit                                   leave the session`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().Int("history", history.DefaultCapacity, "Number of recent colors to keep")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	capacity, _ := cmd.Flags().GetInt("history")
	recent := history.New(capacity)
	session := dispatch.NewSession(
		dispatch.WithLogger(logging.Logger()),
		dispatch.WithHistory(recent),
		dispatch.WithApply(func(r dispatch.Result) { printResult(cmd, r) }),
	)

	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			return nil
		case "recent":
			for _, hex := range recent.Recent() {
				rgb, _ := color.ParseHex(hex)
				fmt.Fprintf(out, "%s %s\n", hex, swatch(cmd, rgb))
			}
			continue
		}

		model, values, err := parseSessionLine(fields)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ %v\n", err)
			continue
		}
		if _, err := session.Synchronize(model, values...); err != nil && !errors.Is(err, dispatch.ErrInFlight) {
			return err
		}
	}
	return sc.Err()
}

// parseSessionLine reads "<model> values..." or a lone hex/name RGB color.
func parseSessionLine(fields []string) (color.Model, []float64, error) {
	if len(fields) == 1 {
		rgb, err := color.ParseRGB(fields[0])
		if err != nil {
			return 0, nil, err
		}
		return color.ModelRGB, []float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)}, nil
	}
	model, err := color.ParseModel(fields[0])
	if err != nil {
		return 0, nil, err
	}
	return model, pipeline.ParseValues(model, strings.Join(fields[1:], " ")), nil
}
