package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tilldesk/tilldesk/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all demo sessions registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "tilldesk",
		Short:   "Interactive teller console: bank accounts, calculator, library, guessing game",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newBankCommand(&verbose))
	rootCmd.AddCommand(newCalcCommand())
	rootCmd.AddCommand(newLibraryCommand())
	rootCmd.AddCommand(newGuessCommand())

	return rootCmd
}
