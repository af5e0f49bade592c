package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/humorlint/internal/configloader"
	"github.com/yaklabco/humorlint/internal/logging"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new humorlint configuration file",
		Long: `Create a new .humorlint.yml configuration file in the current directory
with the default settings. The rule set is fixed; the file only controls
which files are checked and how results are reported.

Examples:
  humorlint init                       Create .humorlint.yml
  humorlint init --format toml         Create .humorlint.toml instead
  humorlint init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.ErrOrStderr(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .humorlint.yml or .humorlint.toml)")

	return cmd
}

func runInit(w io.Writer, flags *initFlags) error {
	logger := logging.NewInteractive(w)

	if flags.format != "yaml" && flags.format != "toml" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrInvalidUsage, flags.format)
	}

	outputPath := flags.output
	if outputPath == "" {
		if flags.format == "toml" {
			outputPath = ".humorlint.toml"
		} else {
			outputPath = ".humorlint.yml"
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := configloader.WriteDefault(outputPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'humorlint rules' to see the rules it enforces")

	return nil
}
