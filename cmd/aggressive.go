package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var aggressiveApplyFlag bool

// aggressiveCmd represents the aggressive command.
var aggressiveCmd = newAggressiveCmd()

func newAggressiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggressive [root]",
		Short: "Insert using namespace std; and strip every std:: prefix",
		Long: `Inserts "using namespace std;" after the leading #include block of every
source file that lacks it, then removes every "std::" prefix, nested names
included (std::filesystem::path becomes filesystem::path).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(runArgs(m.StrategyAggressive, args, aggressiveApplyFlag))
		},
	}
	cmd.Flags().BoolVar(&aggressiveApplyFlag, "apply", false, "write changes back instead of a dry run")

	return cmd
}

func init() {
	rootCmd.AddCommand(aggressiveCmd)
}
