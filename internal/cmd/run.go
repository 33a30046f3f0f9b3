package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pthm/aquality/internal/config"
	"github.com/pthm/aquality/internal/loader"
	"github.com/pthm/aquality/internal/quality"
	"github.com/pthm/aquality/internal/reporter"
	"github.com/pthm/aquality/internal/ui"
	"github.com/pthm/aquality/internal/version"
)

func (r *Root) run(cmd *cobra.Command, args []string) error {
	if r.opts.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Short())
		r.code = ExitUsage
		return nil
	}

	if len(args) < 3 {
		r.code = ExitUsage
		return cmd.Help()
	}

	if (len(args)-1)%2 != 0 {
		return inputError(errors.New("for each tool a corresponding mapping must be provided"))
	}

	format := r.opts.format
	if r.opts.table {
		format = "table"
	}
	switch format {
	case "text", "table", "json":
	default:
		return usageError("unknown format %q (expected text, table or json)", format)
	}

	cfg, err := config.Load(r.opts.configPath)
	if err != nil {
		return inputError(err)
	}

	u := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)

	logger := r.newLogger(u.ErrWriter, r.opts.verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting", zap.String("version", version.Info()))

	// Stage 1: Check every input exists before reading any of them
	for _, path := range args {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return inputError(fmt.Errorf("the selected file %s does not exist", path))
		}
	}
	for _, path := range args {
		logger.Info("reading file", zap.String("path", path))
	}

	// Stage 2: Load model and tools
	model, err := loader.LoadUniqueLines(args[0])
	if err != nil {
		return inputError(fmt.Errorf("failed to load model: %w", err))
	}

	tools, err := loadTools(args[1:], cfg.Separator)
	if err != nil {
		return inputError(err)
	}

	logger.Info("loaded inputs",
		zap.Int("concepts", len(model)),
		zap.Int("tools", len(tools)),
		zap.Int("constructs", quality.ConstructCount(tools)))

	// Stage 3: Evaluate
	metrics := quality.DefaultMetrics()
	res, err := quality.Evaluate(model, tools, metrics)
	if err != nil {
		return err
	}

	var breakdown *quality.Breakdown
	if r.opts.explain {
		breakdown = quality.Explain(model, tools, metrics)
	}

	// Stage 4: Report results
	var rep reporter.Reporter
	switch {
	case u.IsJSON():
		rep = reporter.NewJSONReporter(u.Writer)
	case format == "table":
		rep = reporter.NewTableReporter(u.Writer, cfg.DelimiterRune())
	default:
		rep = reporter.NewTextReporter(u.Writer, u, cfg.Precision)
	}

	if err := rep.Report(res, breakdown); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.code = ExitOK
	return nil
}

// loadTools reads (tool, mapping) file pairs in order
func loadTools(paths []string, sep string) ([]quality.Tool, error) {
	tools := make([]quality.Tool, 0, len(paths)/2)
	for i := 0; i+1 < len(paths); i += 2 {
		toolPath, mappingPath := paths[i], paths[i+1]

		constructs, err := loader.LoadUniqueLines(toolPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load tool: %w", err)
		}

		mapping, err := loader.LoadMapping(mappingPath, sep)
		if err != nil {
			return nil, fmt.Errorf("failed to load mapping: %w", err)
		}

		tools = append(tools, quality.Tool{
			Name:       filepath.Base(toolPath),
			Constructs: constructs,
			Mapping:    mapping,
		})
	}
	return tools, nil
}
