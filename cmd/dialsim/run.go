package main

import (
	"github.com/aretw0/dialsim/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <input-file>",
	Short: "Run the simulation over an instruction file",
	Args:  requireInputFile,
	RunE:  runSimulation,
}

func runSimulation(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	logLevel, _ := flags.GetString("log-level")
	output, _ := flags.GetString("output")
	metricsFile, _ := flags.GetString("metrics-file")
	debug, _ := flags.GetBool("debug")

	return cli.Execute(cmd.Context(), cli.RunOptions{
		InputPath:      args[0],
		ConfigPath:     configPath,
		ConfigExplicit: flags.Changed("config"),
		LogLevel:       logLevel,
		Output:         output,
		MetricsFile:    metricsFile,
		Debug:          debug,
		Stdout:         cmd.OutOrStdout(),
		Stderr:         cmd.ErrOrStderr(),
	})
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no subcommand is given.
	rootCmd.RunE = runCmd.RunE
}
