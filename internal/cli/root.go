// Package cli provides the command-line interface for loggrep.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seanpor/loggrep/internal/cli/commands"
	"github.com/seanpor/loggrep/pkg/search"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "loggrep: %v\n", err)
		if errors.Is(err, search.ErrInvalidPattern) {
			return 1 // Pattern error
		}
		return 2 // File, config, or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command. The root command itself
// runs the search, grep-style; everything else is a subcommand.
func NewRootCommand() *cobra.Command {
	rootCmd := commands.NewSearchCommand()

	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewFormatsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
