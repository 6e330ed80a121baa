// Package cmd wires the lumen CLI: running a script file or inline
// expression, or dropping into an interactive session.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "lumen is a tree-walking evaluator for a small scripting language",
	Long: `lumen parses and evaluates programs written in a small
dynamically-typed scripting language: integers, strings, booleans,
arrays, hashes, first-class functions with lexical closures, and a
handful of built-ins.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
}
