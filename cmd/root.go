// Package cmd provides the root command and CLI setup for stdscope.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/stdscope/internal/adapter"
	"github.com/mouse-blink/stdscope/internal/controller"
	"github.com/mouse-blink/stdscope/internal/domain"
	m "github.com/mouse-blink/stdscope/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow
var logger *zap.Logger

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stdscope",
		Short: "Rewrite std:: qualification in C++ source trees",
		Long: `stdscope rewrites how C++ sources refer to the standard namespace.

Every strategy scans the include, src, test_parser and simple_parser
directories under the project root for .hpp, .h, .cpp, .cc and .cxx files.
Runs are dry by default; pass --apply to write the changes back.

Strategies:
  aggressive   insert "using namespace std;" and strip every std:: prefix
  cleanup      move "using namespace std;" after the includes, drop bare usings
  introduce    add "using std::name;" per symbol and unqualify its uses`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config := zap.NewProductionConfig()

			var err error

			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if workflow == nil {
				ui = controller.NewUI(cmd.Root(), controller.IsTTY(os.Stdout))
				workflow = domain.NewWorkflow(fsAdapter, ui, logger, domain.DefaultRewriters()...)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runArgs builds the workflow arguments for a strategy subcommand.
func runArgs(strategy m.Strategy, args []string, apply bool) domain.RunArgs {
	root := m.Path(".")
	if len(args) > 0 {
		root = m.Path(args[0])
	}

	return domain.RunArgs{
		Strategy: strategy,
		Root:     root,
		Apply:    apply,
	}
}
