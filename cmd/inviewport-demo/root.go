//go:build !wasm
// +build !wasm

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcrobe/nojs-inviewport/console"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "inviewport-demo",
	Short: "Replay viewport detection for the numbers list without a browser",
	Long: `inviewport-demo renders the numbers list against an in-memory layout,
scrolls it through a sequence of offsets and reports which items entered the
viewport at each step. Items are stacked vertically at a fixed height.`,
	Version: "0.1.0",
	// execute prints the error itself.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log detector activity")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, paint(errorStyle, err.Error()))
		os.Exit(1)
	}
}

// configureLogging routes component logging to w. Only warnings and errors
// are shown unless --verbose is set.
func configureLogging(w io.Writer) {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	console.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// printInfo prints to the command's output unless in quiet mode
func printInfo(cmd *cobra.Command, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	}
}
