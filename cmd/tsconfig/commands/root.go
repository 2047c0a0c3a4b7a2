// Package commands provides the CLI commands for the tsconfig tool.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsresolve/tsconfig/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags
var (
	logLevel   string
	prettyLogs bool
)

var rootCmd = &cobra.Command{
	Use:   "tsconfig",
	Short: "Resolve effective tsconfig.json configurations",
	Long: `tsconfig loads a tsconfig.json or jsconfig.json file, follows its
extends chain across files and node_modules packages, and prints the
single effective configuration that results.

Run 'tsconfig resolve' in a project directory to see the merged
config, 'tsconfig files' to list the source files it selects, or
'tsconfig diff' to compare two projects.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Pretty: prettyLogs,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().BoolVar(&prettyLogs, "pretty-logs", false, "Human-readable log output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("tsconfig %s (%s)\n", Version, BuildTime))

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(diffCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configArg returns the config path from args, defaulting to
// tsconfig.json in the current directory.
func configArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "tsconfig.json"
}
