package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var errMissingInput = errors.New("missing input file: provide the path to an instruction file (e.g. dialsim input.txt)")

var rootCmd = &cobra.Command{
	Use:   "dialsim <input-file>",
	Short: "Dialsim rotates a 100-position dial and counts zero crossings",
	Long: `Dialsim reads one turn instruction per line (R or L followed by a tick count),
applies them to a dial starting at 50 and reports how often the dial reached zero.`,
	Args:          requireInputFile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func requireInputFile(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errMissingInput
	case 1:
		return nil
	default:
		return fmt.Errorf("expected a single input file, got %d arguments", len(args))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: ./dialsim.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("output", "", "Trace format: auto, plain, color or json")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
