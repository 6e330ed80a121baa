package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lumen/config"
	"lumen/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive lumen session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	session := repl.New(os.Stdin, os.Stdout, cfg, logger)
	session.Run()
	return nil
}
