package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/humorlint/internal/logging"
	"github.com/yaklabco/humorlint/pkg/config"
	"github.com/yaklabco/humorlint/pkg/lint"
	"github.com/yaklabco/humorlint/pkg/lsp"
)

type serveFlags struct {
	maxDiagnostics int
	logFile        string
	stdio          bool
}

func newServeCommand(global *globalFlags, info BuildInfo) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"lsp"},
		Short:   "Run the humorlint language server over stdio",
		Long: `Run the humorlint language server.

The server speaks the Language Server Protocol on stdin and stdout and
publishes diagnostics for every document the editor opens, changes, or
saves. Logs go to stderr, or to --log-file when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, global, flags, info)
		},
	}

	cmd.Flags().IntVar(&flags.maxDiagnostics, "max-diagnostics", 0,
		"maximum diagnostics published per document (0 = unlimited)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write server logs to this file")
	cmd.Flags().BoolVar(&flags.stdio, "stdio", true, "communicate over stdin and stdout")

	return cmd
}

func runServe(cmd *cobra.Command, global *globalFlags, flags *serveFlags, info BuildInfo) error {
	overrides := &config.Config{}
	overrides.Server.LogFile = flags.logFile

	cfg, _, err := loadConfig(cmd, global, overrides)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-diagnostics") {
		if flags.maxDiagnostics < 0 {
			return fmt.Errorf("%w: --max-diagnostics must not be negative, got %d",
				ErrInvalidUsage, flags.maxDiagnostics)
		}
		cfg.Server.MaxDiagnostics = flags.maxDiagnostics
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Server.LogFile != "" {
		fileLogger, file, err := logging.NewFile(cfg.Server.LogFile, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("open server log: %w", err)
		}
		defer func() { _ = file.Close() }()
		logger = fileLogger
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Warn("stdin is a terminal; serve expects an editor speaking LSP on stdio")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	server := lsp.NewServer(in, cmd.OutOrStdout(), lsp.ServerOptions{
		Engine:         lint.NewEngine(lint.DefaultRegistry),
		Logger:         logger,
		MaxDiagnostics: cfg.Server.MaxDiagnostics,
		Version:        info.Version,
	})

	logger.Info("language server started",
		logging.FieldVersion, info.Version,
		logging.FieldLimit, cfg.Server.MaxDiagnostics,
	)

	err = server.Run(ctx)
	switch {
	case err == nil, errors.Is(err, lsp.ErrExit):
		logger.Info("language server stopped")
		return nil
	case errors.Is(err, lsp.ErrExitWithoutShutdown):
		logger.Warn("client exited without shutdown")
		return err
	default:
		return fmt.Errorf("language server: %w", err)
	}
}
