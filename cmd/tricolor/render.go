package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davesmith10/tricolor/internal/color"
	"github.com/davesmith10/tricolor/internal/dispatch"
	"github.com/spf13/cobra"
)

// swatch renders a small block filled with c, or nothing when color output
// is disabled.
func swatch(cmd *cobra.Command, c color.RGB) string {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", 6))
}

func printResult(cmd *cobra.Command, r dispatch.Result) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "RGB:  %d, %d, %d  %s %s\n", r.RGB.R, r.RGB.G, r.RGB.B, r.RGB.Hex(), swatch(cmd, r.RGB))
	fmt.Fprintf(w, "CMYK: %d%%, %d%%, %d%%, %d%%\n", r.CMYK.C, r.CMYK.M, r.CMYK.Y, r.CMYK.K)
	fmt.Fprintf(w, "Lab:  %.2f, %.2f, %.2f\n", r.Lab.L, r.Lab.A, r.Lab.B)
	printNotices(cmd.ErrOrStderr(), r)
}

func printNotices(w io.Writer, r dispatch.Result) {
	if r.InvalidInput {
		names := r.Source.ComponentNames()
		parts := make([]string, len(names))
		for i, v := range dispatch.Defaults(r.Source) {
			parts[i] = fmt.Sprintf("%s=%g", names[i], v)
		}
		fmt.Fprintf(w, "⚠ invalid %s value, using defaults %s\n",
			strings.ToUpper(r.Source.String()), strings.Join(parts, " "))
	}
	if r.OutOfGamut {
		fmt.Fprintln(w, "⚠ RGB values were clamped (outside 0-255)")
	}
}
