package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var cleanupApplyFlag bool

// cleanupCmd represents the cleanup command.
var cleanupCmd = newCleanupCmd()

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup [root]",
		Short: "Move using namespace std; after the includes and drop bare usings",
		Long: `Removes every "using namespace std;" line and puts a single one back directly
after the leading #include block. Bare declarations such as "using string;"
left behind by earlier rewrites are deleted; aliases and qualified
declarations are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(runArgs(m.StrategyCleanup, args, cleanupApplyFlag))
		},
	}
	cmd.Flags().BoolVar(&cleanupApplyFlag, "apply", false, "write changes back instead of a dry run")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
