package main

import (
	"fmt"

	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [hex|name]",
	Short: "Show every representation of a hex or named color",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	rgb, err := color.ParseRGB(args[0])
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	r, err := dispatch.Synchronize(color.ModelRGB, float64(rgb.R), float64(rgb.G), float64(rgb.B))
	if err != nil {
		return err
	}
	xyz := r.RGB.XYZ()
	h, s, l := r.RGB.HSL()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Color: %s %s\n", r.RGB.Hex(), swatch(cmd, r.RGB))
	if name, ok := r.RGB.Name(); ok {
		fmt.Fprintf(w, "Name:  %s\n", name)
	}
	fmt.Fprintf(w, "RGB:   %d, %d, %d\n", r.RGB.R, r.RGB.G, r.RGB.B)
	fmt.Fprintf(w, "CMYK:  %d%%, %d%%, %d%%, %d%%\n", r.CMYK.C, r.CMYK.M, r.CMYK.Y, r.CMYK.K)
	fmt.Fprintf(w, "Lab:   %.2f, %.2f, %.2f\n", r.Lab.L, r.Lab.A, r.Lab.B)
	fmt.Fprintf(w, "XYZ:   %.3f, %.3f, %.3f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Fprintf(w, "HSL:   %.1f°, %.1f%%, %.1f%%\n", h, s*100, l*100)
	return nil
}
