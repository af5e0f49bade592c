// Package cli provides the Cobra command structure for humorlint.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/humorlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug    bool
	config   string
	color    string
	noConfig bool
}

// NewRootCommand creates the root humorlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "humorlint",
		Short: "A linter that holds comments to a higher standard of humor",
		Long: `humorlint checks posts and comments against a small, fixed set of
joke rules: every comment starts with an import declaration, returns a
value on its last line, ends its sentences with semicolons, and links
each anchor text to the one true video at least once.

Run "humorlint check" on files or directories, or "humorlint serve" to
publish the same diagnostics to an editor over the Language Server Protocol.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flags.noConfig, "no-config", false,
		"ignore system, user, and project config files")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newServeCommand(flags, info))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
