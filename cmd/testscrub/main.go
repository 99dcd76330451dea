package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	rootCmd := newRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "testscrub",
		Short: "A tool for removing redundant database cleanup chains from integration tests",
		Long: `testscrub rewrites the test files under tests/integration, removing the
per-test database cleanup chains that automatic teardown has made
redundant. Files are rewritten in place; files without a chain are left
untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// TODO(dr.methodical): 🧪 Add signal handling so an interrupt cancels the context
