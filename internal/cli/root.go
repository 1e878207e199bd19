package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studiva-backend",
		Short: "Learning platform backend: progress tracking, scoring and leaderboards",
	}

	cmd.AddCommand(newServerCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}
