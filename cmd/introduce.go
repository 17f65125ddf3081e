package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stdscope/internal/model"
)

var introduceApplyFlag bool

// introduceCmd represents the introduce command.
var introduceCmd = newIntroduceCmd()

func newIntroduceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "introduce [root]",
		Short: "Declare each used std symbol and unqualify its uses",
		Long: `Finds single-segment std::name references, adds a sorted
"using std::name;" block after the leading #include block and rewrites the
references to the bare name. Nested names such as std::filesystem::path are
left alone. Without --apply the planned declarations and replacements are
listed per file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(runArgs(m.StrategyIntroduce, args, introduceApplyFlag))
		},
	}
	cmd.Flags().BoolVar(&introduceApplyFlag, "apply", false, "write changes back instead of a dry run")

	return cmd
}

func init() {
	rootCmd.AddCommand(introduceCmd)
}
