package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	envFile    string
	dbPath     string
	logOutput  io.Writer
	now        func() time.Time
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(&rootOptions{
		logOutput: os.Stderr,
		now:       time.Now,
	})
}

func newRootCommand(options *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "medmind",
		Short:         "medmind scores daily nutrition and activity",
		Long:          "medmind aggregates logged meals, workouts, and sleep into daily scores, streaks, and history.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&options.configFile, "config", "", "Path to a config file (default ./config.yml)")
	rootCmd.PersistentFlags().StringVar(&options.envFile, "env-file", ".env", "Path to a .env file loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&options.dbPath, "db", "", "Path to SQLite database (overrides DB_PATH)")

	rootCmd.AddCommand(
		newServeCommand(options),
		newSummaryCommand(options),
		newHistoryCommand(options),
		newTargetsCommand(),
		newImportCommand(options),
		newConsumeCommand(options),
	)
	return rootCmd
}
