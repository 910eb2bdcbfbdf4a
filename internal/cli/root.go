// SPDX-License-Identifier: MIT

// Package cli wires the quadrature and matrix packages into the numkit
// command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numkit/internal/config"
	"github.com/katalvlaran/numkit/internal/logging"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	Verbose bool
	Output  string // "table" | "yaml"

	Config *config.Config
	Log    *zap.Logger
}

// ValidOutputs defines the allowed output formats.
var ValidOutputs = []string{config.OutputTable, config.OutputYAML}

// NewRootCommand creates the root command. cfg supplies the defaults that
// flags override; a nil cfg means config.Default().
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := &RootOptions{Config: cfg, Log: logging.NewNop()}

	cmd := &cobra.Command{
		Use:           "numkit",
		Short:         "numkit - numerical integration and dense matrix algebra",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidOutput(opts.Output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.Output, ValidOutputs)
			}
			level := cfg.LogLevel
			if opts.Verbose {
				level = "debug"
			}
			log, err := logging.New(logging.Config{Level: level, Development: cfg.LogDev}, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			opts.Log = log.Named(cmd.Name())

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Output, "output", cfg.Output, "output format (table|yaml)")

	cmd.AddCommand(NewIntegrateCommand(opts))
	cmd.AddCommand(NewRulesCommand(opts))
	cmd.AddCommand(NewFuncsCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))

	return cmd
}

func isValidOutput(output string) bool {
	for _, o := range ValidOutputs {
		if o == output {
			return true
		}
	}

	return false
}
