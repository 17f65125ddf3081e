package domain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/stdscope/internal/adapter"
	"github.com/mouse-blink/stdscope/internal/controller"
	m "github.com/mouse-blink/stdscope/internal/model"
)

var (
	// DefaultTargetDirs are the root-relative directories every run scans.
	DefaultTargetDirs = []string{"include", "src", "test_parser", "simple_parser"}

	// DefaultExtensions are the file extensions every run rewrites.
	DefaultExtensions = []string{".hpp", ".h", ".cpp", ".cc", ".cxx"}
)

// RunArgs holds the arguments for a rewrite run.
type RunArgs struct {
	Strategy m.Strategy
	Root     m.Path
	Apply    bool
}

// Workflow defines the interface for rewrite runs.
type Workflow interface {
	Run(args RunArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	registry  Registry
	logger    *zap.Logger

	targetDirs []string
	extensions []string
}

// NewWorkflow creates a new Workflow instance with the provided adapters and
// strategies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	logger *zap.Logger,
	rws ...Rewriter,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter:  fsAdapter,
		ui:         ui,
		registry:   NewRegistry(rws...),
		logger:     logger,
		targetDirs: DefaultTargetDirs,
		extensions: DefaultExtensions,
	}
}

// Run rewrites every candidate file with the requested strategy. Files are
// processed one at a time; the first read or write error aborts the run.
func (w *workflow) Run(args RunArgs) error {
	rw, err := w.registry.Lookup(args.Strategy)
	if err != nil {
		return err
	}

	root := args.Root
	if root == "" {
		root = "."
	}

	if err := w.ui.Start(controller.WithStrategy(args.Strategy), controller.WithApplyMode(args.Apply)); err != nil {
		return err
	}
	defer w.ui.Close()

	paths, err := w.fsAdapter.Get(root, w.targetDirs, w.extensions)
	if err != nil {
		return fmt.Errorf("failed to collect sources under %s: %w", root, err)
	}

	w.logger.Info("starting rewrite",
		zap.String("strategy", string(args.Strategy)),
		zap.String("root", string(root)),
		zap.Bool("apply", args.Apply),
		zap.Int("files", len(paths)),
	)

	report := m.Report{
		Strategy: args.Strategy,
		Apply:    args.Apply,
		Scanned:  len(paths),
	}

	for _, path := range paths {
		result, changed, err := w.processFile(path, rw, args.Apply)
		if err != nil {
			return err
		}

		if !changed {
			continue
		}

		w.ui.DisplayFileResult(result)
		report.Changed = append(report.Changed, result)
	}

	w.logger.Info("rewrite finished",
		zap.String("strategy", string(args.Strategy)),
		zap.Int("scanned", report.Scanned),
		zap.Int("changed", len(report.Changed)),
	)

	return w.ui.DisplayReport(report)
}

// processFile rewrites a single file and writes it back when apply is set.
func (w *workflow) processFile(path m.Path, rw Rewriter, apply bool) (m.FileResult, bool, error) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileResult{}, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	source := m.Source{Origin: path, Text: string(content)}

	rewrite, err := rw.Rewrite(source.Text)
	if err != nil {
		return m.FileResult{}, false, fmt.Errorf("failed to rewrite %s: %w", path, err)
	}

	if rewrite.Skipped || rewrite.Text == source.Text {
		w.logger.Debug("unchanged", zap.String("path", string(path)), zap.Bool("skipped", rewrite.Skipped))

		return m.FileResult{}, false, nil
	}

	result := m.FileResult{
		Source:  path,
		Rewrite: rewrite,
		Stats:   LineStatsOf(source.Text, rewrite.Text),
	}

	if apply {
		if err := w.fsAdapter.WriteFile(path, []byte(rewrite.Text)); err != nil {
			return m.FileResult{}, false, fmt.Errorf("failed to write %s: %w", path, err)
		}

		result.Applied = true
	}

	w.logger.Debug("rewritten",
		zap.String("path", string(path)),
		zap.Int("added", result.Stats.Added),
		zap.Int("removed", result.Stats.Removed),
		zap.Bool("applied", result.Applied),
	)

	return result, true, nil
}
