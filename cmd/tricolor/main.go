package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davesmith10/tricolor/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "tricolor",
	Short:             "Convert colors between RGB, CMYK and CIE L*a*b*",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Do not print color swatches")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	logging.SetLogger(slog.New(h))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
