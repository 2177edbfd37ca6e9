package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cpp-helper",
	Short: "Generate C/C++ function implementations from prototypes",
	Long: `cpp-helper - C/C++ Implementation Generator

cpp-helper reads a function prototype from a header file and generates the
matching definition, either below the prototype or appended to the companion
source file.

Key Features:
  - Single-line prototype recognition: return types, qualifiers, templates
  - Class member support via Class::method scope resolution
  - Duplicate detection so existing definitions are never regenerated
  - Project-wide scan and status report backed by a local index

Quick Start:
  cpp-helper init                           Write a default .cpphelper.toml
  cpp-helper generate widget.h --line 12    Implement one prototype
  cpp-helper implement-class widget.h --class Widget
  cpp-helper scan                           Index existing definitions
  cpp-helper status                         List unimplemented prototypes`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(implementClassCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(initCmd)
	// versionCmd is registered in version.go
}
