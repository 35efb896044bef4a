// Package main is the entry point for the fkba-cli application.
// It registers the maintenance sub-commands (schema migration, staff
// accounts, matchmaking metrics and brackets, synthetic athletes) and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maurinmaster/SIA-FKBA/cmd/fkba-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "fkba-cli",
		Short: "FKBA platform maintenance tool",
		Long: `fkba-cli runs maintenance tasks against the FKBA platform database.

The configuration is read from --config, CONFIG_PATH or configs/rest-app.yaml,
and every key may be overridden by FKBA_ prefixed environment variables
(for example FKBA_DATABASE_DSN).`,
		SilenceUsage: true,
	}
	commands.AddConfigFlag(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitMatchmakingCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize matchmaking commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
