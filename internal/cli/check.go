package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/fsutil"
	"github.com/yaklabco/humorlint/pkg/lint"
	_ "github.com/yaklabco/humorlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/humorlint/pkg/reporter"
	"github.com/yaklabco/humorlint/pkg/runner"
)

// stdinPath is the argument that makes check read a single document from stdin.
const stdinPath = "-"

// reportFilePermissions is the file mode for --output reports.
const reportFilePermissions = 0o644

type checkFlags struct {
	format         string
	ruleFormat     string
	jobs           int
	ignore         []string
	extensions     []string
	noContext      bool
	noSummary      bool
	compact        bool
	followSymlinks bool
	output         string
	stdinFilename  string
}

func newCheckCommand(global *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check comment files for humor violations",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, global, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check posts and comments against the humor rules.

By default, checks all .txt, .md, and .comment files in the current
directory and subdirectories. Specify paths to check specific files or
directories, or "-" to read a single document from stdin.

Examples:
  humorlint check                       # Check current directory
  humorlint check posts/                # Check posts directory
  humorlint check reply.txt             # Check a single file
  humorlint check --format json         # Output as JSON for CI
  cat reply.txt | humorlint check -     # Check stdin`

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, summary")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore, added to configured ones")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions to check (e.g. .txt,.md)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse symlinked directories")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&flags.stdinFilename, "stdin-filename", "<stdin>",
		"path reported for a document read from stdin")
}

func runCheck(cmd *cobra.Command, args []string, global *globalFlags, flags *checkFlags) error {
	logger := logging.Default()

	// Only values that were explicitly provided on the command line override
	// the configuration files.
	overrides := &config.Config{}
	if cmd.Flags().Changed("format") {
		overrides.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("rule-format") {
		overrides.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ext") {
		overrides.Extensions = flags.extensions
	}

	cfg, workDir, err := loadConfig(cmd, global, overrides)
	if err != nil {
		return err
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	ruleFormat, err := config.ParseRuleFormat(string(cfg.RuleFormat))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry := lint.DefaultRegistry
	pipeline := lint.NewPipeline(lint.NewEngine(registry))

	var result *runner.Result
	if len(args) == 1 && args[0] == stdinPath {
		result, err = checkStdin(ctx, cmd.InOrStdin(), pipeline, flags.stdinFilename)
	} else {
		opts := runner.OptionsFromConfig(cfg, args)
		opts.WorkingDir = workDir
		opts.FollowSymlinks = flags.followSymlinks

		logger.Debug("starting check",
			logging.FieldPaths, opts.Paths,
			logging.FieldWorkingDir, opts.WorkingDir,
			logging.FieldJobs, opts.Jobs,
		)

		result, err = runner.New(pipeline).Run(ctx, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	color := cfg.Color
	var out io.Writer = cmd.OutOrStdout()
	var report bytes.Buffer
	if flags.output != "" {
		out = &report
		color = config.ColorNever
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		Format:      format,
		Color:       color,
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		RuleFormat:  ruleFormat,
		RuleOrder:   registry.IDs(),
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output != "" {
		if err := fsutil.WriteAtomic(ctx, flags.output, report.Bytes(), reportFilePermissions); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Debug("report written", logging.FieldOutput, flags.output)
	}

	return resultError(result)
}

// checkStdin lints a single document read from in and reports it under name.
func checkStdin(ctx context.Context, in io.Reader, pipeline *lint.Pipeline, name string) (*runner.Result, error) {
	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	outcome := runner.FileOutcome{Path: name}
	pipelineResult, err := pipeline.ProcessContent(ctx, name, content)
	if err != nil {
		outcome.Error = err
	} else {
		outcome.Result = pipelineResult
	}

	return runner.Collect(outcome), nil
}
