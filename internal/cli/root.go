// Package cli implements the tython command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxonhe/go-tython/paths"
	"github.com/rxonhe/go-tython/placeholder"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"

	// logger overrides the production logger; set by tests.
	logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tython CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "tython",
		Short: "Build and evaluate deferred expressions",
		Long: `tython records a chain of operations against a placeholder and
evaluates it later against a seed value.

  tython eval --seed 3 add:5 mul:2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if !opts.Verbose {
				return nil
			}
			logger = opts.logger
			if logger == nil {
				config := zap.NewProductionConfig()
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				var err error
				logger, err = config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
			}
			placeholder.SetLogger(logger)
			paths.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger == nil {
				return
			}
			_ = logger.Sync()
			placeholder.SetLogger(nil)
			paths.SetLogger(nil)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each evaluation step")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewOpsCommand(opts))

	return cmd
}
